package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hyperdice/internal/app"
	"github.com/philipparndt/hyperdice/pkg/config"
)

var (
	viewConfig string
	viewDie    string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive die viewer",
	Long: `Open the GPU viewer. Drag to rotate in the XW/YW planes, scroll for
ZW, keys 1-4 switch the die, W toggles the wireframe, space toggles the
idle spin. The settings file is watched and applied live.`,
	Run: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)

	viewCmd.Flags().StringVarP(&viewConfig, "config", "c", "hyperdice.toml", "Settings file (TOML)")
	viewCmd.Flags().StringVarP(&viewDie, "die", "d", "", "Override the configured die kind")
}

func runView(cmd *cobra.Command, args []string) {
	settings, err := config.Load(viewConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}
	if viewDie != "" {
		settings.Die = viewDie
	}

	if err := app.Run(settings, viewConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hyperdice/pkg/config"
	"github.com/philipparndt/hyperdice/pkg/export"
	"github.com/philipparndt/hyperdice/pkg/polytope"
)

var (
	labelsDie      string
	labelsOut      string
	labelsColor    string
	labelsTileSize int
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Export a die's face labels as an image sheet",
	Long:  "Bake every face texture of a die into one grid image and write it as WebP or PNG, chosen by file extension.",
	Run:   runLabels,
}

func init() {
	rootCmd.AddCommand(labelsCmd)

	labelsCmd.Flags().StringVarP(&labelsDie, "die", "d", "tesseract", "die kind: 5-cell, tesseract, 16-cell or 24-cell")
	labelsCmd.Flags().StringVarP(&labelsOut, "out", "o", "labels.webp", "Output image file (.webp or .png)")
	labelsCmd.Flags().StringVar(&labelsColor, "color", "#c82828", "Base face color as hex")
	labelsCmd.Flags().IntVar(&labelsTileSize, "tile-size", 128, "Tile edge length in pixels")
}

func runLabels(cmd *cobra.Command, args []string) {
	kind, err := polytope.ParseKind(labelsDie)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	base, err := config.Settings{BaseColor: labelsColor}.Color()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sheet, err := export.BuildSheet(kind, base, labelsTileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building sheet: %v\n", err)
		os.Exit(1)
	}

	if err := export.WriteSheet(sheet, labelsOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing sheet: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s label sheet to %s\n", kind, labelsOut)
}

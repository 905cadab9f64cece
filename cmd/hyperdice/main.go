package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hyperdice/pkg/polytope"
	"github.com/philipparndt/hyperdice/version"
)

var rootCmd = &cobra.Command{
	Use:   "hyperdice",
	Short: "A viewer and toolbox for four-dimensional dice",
	Long: `hyperdice renders regular 4-polytopes (5-cell, tesseract, 16-cell and
24-cell) as dice: rotate them in the XW, YW and ZW planes, project them to
3D and inspect, label or export the result.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// dieFlags are the flags shared by every command that builds a die
type dieFlags struct {
	die      string
	xw       float64
	yw       float64
	zw       float64
	distance float64
}

func (f *dieFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.die, "die", "d", "tesseract", "die kind: 5-cell, tesseract, 16-cell or 24-cell")
	cmd.Flags().Float64Var(&f.xw, "xw", 0.0, "XW plane rotation in radians")
	cmd.Flags().Float64Var(&f.yw, "yw", 0.0, "YW plane rotation in radians")
	cmd.Flags().Float64Var(&f.zw, "zw", 0.0, "ZW plane rotation in radians")
	cmd.Flags().Float64Var(&f.distance, "distance", polytope.DefaultViewerDistance, "4D viewer distance for the projection")
}

// build creates the rotated die from the flags
func (f *dieFlags) build() (*polytope.Polytope, error) {
	kind, err := polytope.ParseKind(f.die)
	if err != nil {
		return nil, err
	}

	p, err := polytope.New(kind)
	if err != nil {
		return nil, err
	}
	p.SetAngles(f.xw, f.yw, f.zw)
	p.Apply()
	return p, nil
}

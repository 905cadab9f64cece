package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hyperdice/pkg/scene"
	"github.com/philipparndt/hyperdice/pkg/stl"
)

var (
	exportFlags     dieFlags
	exportOut       string
	exportASCII     bool
	exportWireframe bool
	exportThickness float64
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the projected die as an STL file",
	Long:  "Project the die at the given rotation and write the emitted mesh (solid faces or wireframe prisms) as STL.",
	Run:   runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFlags.register(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "die.stl", "Output STL file")
	exportCmd.Flags().BoolVar(&exportASCII, "ascii", false, "Write ASCII STL instead of binary")
	exportCmd.Flags().BoolVarP(&exportWireframe, "wireframe", "w", false, "Export the wireframe prisms instead of the solid faces")
	exportCmd.Flags().Float64Var(&exportThickness, "thickness", scene.DefaultWireThickness, "Wireframe prism half-thickness")
}

func runExport(cmd *cobra.Command, args []string) {
	p, err := exportFlags.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	projected := p.Project(exportFlags.distance)

	var emitted scene.Scene
	if exportWireframe {
		scene.EmitWireframe(p, projected, exportThickness, &emitted)
	} else {
		scene.EmitSolid(p, projected, &emitted)
	}

	model := stl.FromScene(&emitted, p.Kind.String())
	if err := stl.WriteFile(exportOut, model, exportASCII); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing STL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d triangles to %s\n", model.TriangleCount(), exportOut)
}

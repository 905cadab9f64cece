package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/hyperdice/pkg/analysis"
)

var infoFlags dieFlags

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display statistics for a projected die",
	Long:  "Show counts, projected edge statistics and the projected bounding box for a die at the given rotation.",
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoFlags.register(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	p, err := infoFlags.build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := analysis.Analyze(p, p.Project(infoFlags.distance))

	fmt.Println("Die Information")
	fmt.Println("===============")
	fmt.Printf("Kind: %s\n", result.Kind)
	xw, yw, zw := p.Angles()
	fmt.Printf("Rotation: XW %.4f, YW %.4f, ZW %.4f rad (W angle %.2f deg)\n\n",
		xw, yw, zw, p.WAngleDegrees())

	fmt.Println("Topology:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Edges: %d\n", result.EdgeCount)
	fmt.Printf("  Cells: %d\n", result.CellCount)
	fmt.Printf("  Cell faces: %d\n\n", result.FaceCount)

	fmt.Println("Projected Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Projected Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}

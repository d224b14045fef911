package main

import (
	"fmt"
	"math"

	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/spf13/cobra"
)

var pointsFlags figureFlags

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the vertices, notable points and measures of the triangle",
	Args:  cobra.NoArgs,
	Run:   runPoints,
}

func init() {
	addFigureFlags(pointsCmd, &pointsFlags)
	rootCmd.AddCommand(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) {
	cfg, err := pointsFlags.load(cmd.Flags())
	if err != nil {
		fail("loading configuration", err)
	}
	printFigure(figure.New(cfg.Figure()))
}

func printFigure(f *figure.Figure) {
	au := colors()
	t := f.Triangle()
	d := f.Derived()

	fmt.Println(au.Bold("Vertices"))
	for _, v := range t {
		fmt.Printf("  %-3s %s\n", au.Cyan(v.Label), geometry.FormatPoint(v.Point))
	}

	fmt.Println()
	fmt.Println(au.Bold("Notable points"))
	notable := []struct {
		name  string
		point geometry.LabeledPoint
	}{
		{"centroid", d.Centroid},
		{"incenter", d.Incenter},
		{"circumcenter", d.Circumcenter},
		{"orthocenter", d.Orthocenter},
	}
	for _, n := range notable {
		line := fmt.Sprintf("  %-3s %-13s %s", au.Green(n.point.Label), n.name, geometry.FormatPoint(n.point.Point))
		if d.Degenerate && n.name != "centroid" {
			line += au.Red("  (fallback)").String()
		}
		fmt.Println(line)
	}

	sides := geometry.SideLengths(t)
	angles := geometry.Angles(t)

	fmt.Println()
	fmt.Println(au.Bold("Measures"))
	fmt.Printf("  Sides:         a=%.2f  b=%.2f  c=%.2f\n", sides[0], sides[1], sides[2])
	fmt.Printf("  Angles:        %s=%.2f°  %s=%.2f°  %s=%.2f°\n",
		t[0].Label, degrees(angles[0]), t[1].Label, degrees(angles[1]), t[2].Label, degrees(angles[2]))
	fmt.Printf("  Perimeter:     %.2f\n", geometry.Perimeter(t))
	fmt.Printf("  Area:          %.2f\n", geometry.Area(t))
	fmt.Printf("  Circumradius:  %.2f\n", d.Circumradius)
	fmt.Printf("  Inradius:      %.2f\n", d.Inradius)
	fmt.Printf("  Shape:         %s\n", au.Cyan(f.Classification()))

	if d.Degenerate {
		fmt.Println()
		fmt.Println(au.Red("Warning: the triangle is degenerate, only the centroid is exact"))
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

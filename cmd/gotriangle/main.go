package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/philipparndt/gotriangle/version"
	"github.com/spf13/cobra"
)

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "gotriangle",
	Short: "An interactive triangle with its notable points",
	Long: `gotriangle computes and draws the notable points of a triangle: centroid,
incenter, circumcenter and orthocenter, together with medians, altitudes,
angle bisectors, perpendicular bisectors and the inscribed and circumscribed
circles. Figures render to SVG or PNG, or open in an interactive window where
the vertices can be dragged.`,
	Version: version.GetVersion(),
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// colors returns the aurora instance honoring --no-color
func colors() aurora.Aurora {
	return aurora.NewAurora(!noColor)
}

func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

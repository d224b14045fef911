package main

import (
	"github.com/philipparndt/gotriangle/internal/app"
	"github.com/spf13/cobra"
)

var viewFlags figureFlags

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the figure in an interactive window",
	Long: `Open the figure in a window. Drag the vertex handles to reshape the triangle,
toggle constructions from the keyboard and click a notable point to highlight
it. With --config the file is reloaded whenever it changes.`,
	Args: cobra.NoArgs,
	Run:  runView,
}

func init() {
	addFigureFlags(viewCmd, &viewFlags)
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) {
	cfg, err := viewFlags.load(cmd.Flags())
	if err != nil {
		fail("loading configuration", err)
	}
	if err := app.Run(cfg, viewFlags.configPath); err != nil {
		fail("running viewer", err)
	}
}

package main

import (
	"fmt"

	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/philipparndt/gotriangle/internal/interaction"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	dragFlags  figureFlags
	dragVertex int
	dragTo     string
	dragSteps  int
	dragOutput string
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Replay a vertex drag and print every change",
	Long: `Replay a pointer drag of one vertex through the interaction controller, the
way a frontend would: press on the vertex handle, move in steps to the
target and release. Every vertex change is printed.`,
	Args: cobra.NoArgs,
	Run:  runDrag,
}

func init() {
	addFigureFlags(dragCmd, &dragFlags)
	dragCmd.Flags().IntVar(&dragVertex, "vertex", 0, "Index of the vertex to drag (0-2)")
	dragCmd.Flags().StringVar(&dragTo, "to", "", `Target position "x,y" in figure coordinates`)
	dragCmd.Flags().IntVar(&dragSteps, "steps", 1, "Number of pointer moves")
	dragCmd.Flags().StringVarP(&dragOutput, "output", "o", "", "Render the final figure to this file")
	_ = dragCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(dragCmd)
}

func runDrag(cmd *cobra.Command, args []string) {
	cfg, err := dragFlags.load(cmd.Flags())
	if err != nil {
		fail("loading configuration", err)
	}
	if dragVertex < 0 || dragVertex > 2 {
		fail("dragging", fmt.Errorf("%w: %d", interaction.ErrVertexIndex, dragVertex))
	}
	target, err := config.ParseVertex(dragTo)
	if err != nil {
		fail("parsing target", err)
	}
	if dragSteps < 1 {
		dragSteps = 1
	}

	au := colors()
	changes := 0
	fc := cfg.Figure()
	fc.OnVerticesChange = func(t geometry.Triangle) {
		changes++
		fmt.Printf("%s %s %s %s\n", au.Cyan(fmt.Sprintf("#%d", changes)), t[0], t[1], t[2])
	}
	f := figure.New(fc)
	f.Resize(float64(cfg.Render.Width), float64(cfg.Render.Height))

	if !replayDrag(f, dragVertex, geometry.NewPoint(target.X, target.Y), dragSteps) {
		fmt.Println("Warning: the drag did not start, is the figure draggable?")
	}

	fmt.Printf("%d change(s), final shape: %s\n", changes, f.Classification())
	if dragOutput != "" {
		format := outputFormat("", dragOutput, false)
		if err := writeFigure(f, cfg, format, dragOutput); err != nil {
			fail("rendering", err)
		}
	}
}

// replayDrag presses on the vertex handle, moves towards the target in
// steps and releases. Each move is mapped with the screen mapping current at
// that moment, as a real pointer would be.
func replayDrag(f *figure.Figure, vertex int, target geometry.Point, steps int) bool {
	c := f.Controller()
	start := f.Triangle()[vertex].Point

	press := f.Mapping().LocalToScreen(start)
	if !c.PointerDown(interaction.PointerEvent{Pointer: interaction.MousePointer, X: press.X, Y: press.Y}) {
		return false
	}

	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		local := start.Plus(target.Minus(start).Times(frac))
		screen := f.Mapping().LocalToScreen(local)
		c.PointerMove(interaction.PointerEvent{Pointer: interaction.MousePointer, X: screen.X, Y: screen.Y})
	}

	c.PointerUp(interaction.PointerEvent{Pointer: interaction.MousePointer})
	return true
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/render"
	"github.com/spf13/cobra"
)

var (
	renderFlags  figureFlags
	renderFormat string
	renderOutput string
	renderWidth  int
	renderHeight int
	renderImgcat bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the figure as SVG or PNG",
	Long: `Render the figure with the selected constructions. SVG goes to stdout unless
an output file is given; PNG needs an output file or --imgcat.`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	addFigureFlags(renderCmd, &renderFlags)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "", "Output format: svg or png (default from the output file extension, else svg)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Output width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Output height in pixels")
	renderCmd.Flags().BoolVar(&renderImgcat, "imgcat", false, "Show the PNG in the terminal (iTerm2)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) {
	cfg, err := renderFlags.load(cmd.Flags())
	if err != nil {
		fail("loading configuration", err)
	}
	if cmd.Flags().Changed("width") {
		cfg.Render.Width = renderWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Render.Height = renderHeight
	}

	format := outputFormat(renderFormat, renderOutput, renderImgcat)
	if format != "svg" && format != "png" {
		fail("rendering", fmt.Errorf("unknown format %q", format))
	}

	f := figure.New(cfg.Figure())
	if f.Derived().Degenerate {
		fmt.Fprintln(os.Stderr, "Warning: the triangle is degenerate, derived points fall back to the centroid")
	}

	if renderImgcat {
		if err := showInTerminal(f, cfg); err != nil {
			fail("rendering", err)
		}
		if renderOutput == "" {
			return
		}
	}

	if err := writeFigure(f, cfg, format, renderOutput); err != nil {
		fail("rendering", err)
	}
}

// outputFormat picks the format from the flag, the output extension or the
// imgcat switch
func outputFormat(format, output string, toTerminal bool) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), "."); ext == "png" || ext == "svg" {
		return ext
	}
	if toTerminal {
		return "png"
	}
	return "svg"
}

func size(cfg config.Config) render.Size {
	return render.Size{Width: float64(cfg.Render.Width), Height: float64(cfg.Render.Height)}
}

// writeFigure writes the figure to the output file, or stdout when empty
func writeFigure(f *figure.Figure, cfg config.Config, format, output string) error {
	var w io.Writer = os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	} else if format == "png" {
		return fmt.Errorf("refusing to write PNG to the terminal, use -o or --imgcat")
	}

	if format == "png" {
		return render.WritePNG(w, f.Scene(), size(cfg), render.DefaultStyle())
	}
	return render.SVG(w, f.Scene(), size(cfg), render.DefaultStyle())
}

func showInTerminal(f *figure.Figure, cfg config.Config) error {
	tmp, err := os.CreateTemp("", "gotriangle-*.png")
	if err != nil {
		return err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := render.SavePNG(tmp.Name(), f.Scene(), size(cfg), render.DefaultStyle()); err != nil {
		return err
	}
	imgcat.CatFile(tmp.Name(), os.Stdout)
	fmt.Println()
	return nil
}

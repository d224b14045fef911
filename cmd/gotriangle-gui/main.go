package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/render"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/philipparndt/gotriangle/pkg/viewer"
	"github.com/philipparndt/gotriangle/pkg/watcher"
	"github.com/philipparndt/gotriangle/version"
)

type App struct {
	window     fyne.Window
	config     config.Config
	configPath string
	watcher    *watcher.FileWatcher
	figure     *viewer.FigureWidget
	info       *FigureInfo
	controls   *Controls
}

// FigureInfo is the live readout next to the figure
type FigureInfo struct {
	verticesLabel *widget.Label
	pointsLabel   *widget.Label
	measuresLabel *widget.Label
	shapeLabel    *widget.Label
}

// Controls are the widgets that edit the display options
type Controls struct {
	checks    map[string]*widget.Check
	highlight *widget.Select
	draggable *widget.Check
}

func main() {
	a := app.New()
	w := a.NewWindow("GoTriangle " + version.GetVersion())

	appInstance := &App{
		window: w,
		config: config.Default(),
	}
	appInstance.setupMainUI()

	// Check if a configuration was provided as argument
	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	}
	defer appInstance.stopWatching()

	w.Resize(fyne.NewSize(1200, 800))
	w.ShowAndRun()
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	cfg, err := config.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load configuration: %w", err), a.window)
		return
	}

	a.stopWatching()
	a.configPath = filename
	a.applyConfig(cfg)

	fw, err := watcher.WatchConfig(filename, watcher.DefaultDebounce, func(cfg config.Config, err error) {
		fyne.Do(func() {
			if err != nil {
				fmt.Printf("Warning: %v\n", err)
				return
			}
			fmt.Printf("Configuration reloaded: %s\n", filename)
			a.applyConfig(cfg)
		})
	})
	if err != nil {
		fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
		return
	}
	a.watcher = fw
}

func (a *App) stopWatching() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
}

func (a *App) newFigure(cfg config.Config) *figure.Figure {
	fc := cfg.Figure()
	fc.OnVerticesChange = func(t geometry.Triangle) {
		a.config.SetTriangle(t)
	}
	return figure.New(fc)
}

// applyConfig shows a new configuration and syncs the controls to it
func (a *App) applyConfig(cfg config.Config) {
	a.config = cfg
	a.figure.SetFigure(a.newFigure(cfg))
	a.syncControls()
}

func (a *App) setupMainUI() {
	a.info = &FigureInfo{
		verticesLabel: widget.NewLabel(""),
		pointsLabel:   widget.NewLabel(""),
		measuresLabel: widget.NewLabel(""),
		shapeLabel:    widget.NewLabel(""),
	}
	a.info.shapeLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.figure = viewer.NewFigureWidget(a.newFigure(a.config), render.DefaultStyle())
	a.figure.SetOnChange(a.updateInfo)

	a.controls = &Controls{checks: make(map[string]*widget.Check)}
	var toggles []fyne.CanvasObject
	for _, t := range layerToggles {
		check := widget.NewCheck(t.label, func(checked bool) {
			*t.field(&a.config.Show) = checked
			a.optionsChanged()
		})
		a.controls.checks[t.label] = check
		toggles = append(toggles, check)
	}

	var highlights []string
	for _, p := range scene.NotablePoints {
		highlights = append(highlights, p.String())
	}
	a.controls.highlight = widget.NewSelect(highlights, func(selected string) {
		a.config.Highlight = selected
		a.optionsChanged()
	})

	a.controls.draggable = widget.NewCheck("Draggable vertices", func(checked bool) {
		a.config.Draggable = checked
		a.figure.Figure().SetDraggable(checked)
	})

	// Create control buttons
	openButton := widget.NewButton("Open Configuration", func() {
		a.showFileDialog()
	})
	saveButton := widget.NewButton("Save Configuration", func() {
		a.showSaveDialog()
	})
	exportButton := widget.NewButton("Export SVG/PNG", func() {
		a.showExportDialog()
	})
	resetButton := widget.NewButton("Reset Triangle", func() {
		a.figure.Figure().SetTriangle(geometry.DefaultTriangle())
	})

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag a vertex handle to reshape the triangle\n" +
			"• Click a notable point to highlight it\n" +
			"• Changes to an opened file are reloaded",
	)
	instructions.Wrapping = fyne.TextWrapWord

	// Create info panel
	infoPanel := container.NewVBox(
		widget.NewLabel("Triangle:"),
		widget.NewSeparator(),
		a.info.verticesLabel,
		a.info.shapeLabel,
		a.info.measuresLabel,
		widget.NewSeparator(),
		widget.NewLabel("Notable points:"),
		widget.NewSeparator(),
		a.info.pointsLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		container.NewVBox(toggles...),
		widget.NewLabel("Highlight:"),
		a.controls.highlight,
		a.controls.draggable,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		saveButton,
		exportButton,
		resetButton,
	)

	// Create scroll container for info panel
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	// Create main layout
	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.figure,   // center
	)

	a.window.SetContent(content)
	a.syncControls()
	a.updateInfo()
}

// layerToggle binds a checkbox to one show flag of the configuration
type layerToggle struct {
	label string
	field func(*config.Show) *bool
}

var layerToggles = []layerToggle{
	{"Medians", func(s *config.Show) *bool { return &s.Medians }},
	{"Altitudes", func(s *config.Show) *bool { return &s.Altitudes }},
	{"Angle bisectors", func(s *config.Show) *bool { return &s.Bisectors }},
	{"Perpendicular bisectors", func(s *config.Show) *bool { return &s.PerpendicularBisectors }},
	{"Circumscribed circle", func(s *config.Show) *bool { return &s.CircumscribedCircle }},
	{"Inscribed circle", func(s *config.Show) *bool { return &s.InscribedCircle }},
	{"Euler line", func(s *config.Show) *bool { return &s.EulerLine }},
	{"Grid", func(s *config.Show) *bool { return &s.Grid }},
	{"Labels", func(s *config.Show) *bool { return &s.Labels }},
}

func (a *App) optionsChanged() {
	a.figure.Figure().SetOptions(a.config.Options())
	a.figure.Update()
}

// syncControls shows the configuration in the controls without feeding the
// changes back
func (a *App) syncControls() {
	show := a.config.Show
	for _, t := range layerToggles {
		check := a.controls.checks[t.label]
		check.Checked = *t.field(&show)
		check.Refresh()
	}

	highlight, _ := scene.ParseNotablePoint(a.config.Highlight)
	a.controls.highlight.Selected = highlight.String()
	a.controls.highlight.Refresh()

	a.controls.draggable.Checked = a.config.Draggable
	a.controls.draggable.Refresh()
}

func (a *App) updateInfo() {
	f := a.figure.Figure()
	t := f.Triangle()
	d := f.Derived()

	// A tap on a notable point changes the highlight from the figure side
	if highlight := f.Options().Highlight.String(); highlight != a.config.Highlight {
		a.config.Highlight = highlight
		a.controls.highlight.Selected = highlight
		a.controls.highlight.Refresh()
	}

	var vertices []string
	for _, v := range t {
		vertices = append(vertices, v.String())
	}
	a.info.verticesLabel.SetText(strings.Join(vertices, "\n"))
	a.info.shapeLabel.SetText(fmt.Sprintf("Shape: %s", f.Classification()))

	sides := geometry.SideLengths(t)
	a.info.measuresLabel.SetText(fmt.Sprintf(
		"Sides: %.2f, %.2f, %.2f\nPerimeter: %.2f\nArea: %.2f\nCircumradius: %.2f\nInradius: %.2f",
		sides[0], sides[1], sides[2], geometry.Perimeter(t), geometry.Area(t), d.Circumradius, d.Inradius,
	))

	var points []string
	for _, np := range scene.NotablePoints[1:] {
		p, ok := np.Select(d)
		if np == scene.Centroid {
			p, ok = d.Centroid, true
		}
		if !ok {
			points = append(points, fmt.Sprintf("%s: undefined", np))
			continue
		}
		points = append(points, fmt.Sprintf("%s: %s", np, geometry.FormatPoint(p.Point)))
	}
	if d.Degenerate {
		points = append(points, "The vertices are collinear")
	}
	a.info.pointsLabel.SetText(strings.Join(points, "\n"))
}

func (a *App) showSaveDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		data, err := a.config.Marshal()
		if err == nil {
			_, err = writer.Write(data)
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to save configuration: %w", err), a.window)
		}
	}, a.window)
}

func (a *App) showExportDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		sc := a.figure.Figure().Scene()
		size := render.Size{Width: float64(a.config.Render.Width), Height: float64(a.config.Render.Height)}
		if strings.EqualFold(filepath.Ext(writer.URI().Path()), ".png") {
			err = render.WritePNG(writer, sc, size, render.DefaultStyle())
		} else {
			err = render.SVG(writer, sc, size, render.DefaultStyle())
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to export figure: %w", err), a.window)
		}
	}, a.window)
}

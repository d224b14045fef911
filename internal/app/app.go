// Package app is the raylib window that shows an interactive triangle.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"golang.org/x/image/font/gofont/goregular"
)

type App struct {
	Figure      FigureState
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	UI          UIState
}

// New creates the application state for a configuration. configPath may be
// empty, in which case nothing is watched.
func New(cfg config.Config, configPath string) *App {
	app := &App{
		View: ViewSettings{
			style:    viewerStyle(),
			showHelp: true,
			showInfo: true,
		},
		Interaction: InteractionState{hoveredVertex: -1},
		FileWatch:   FileWatchState{sourceFile: configPath},
		UI:          UIState{fontSize: 16},
	}
	app.applyConfig(cfg)
	return app
}

// applyConfig rebuilds the figure. The window size carries over.
func (app *App) applyConfig(cfg config.Config) {
	var width, height float64
	if app.Figure.figure != nil {
		width, height = app.Figure.figure.Size()
	}

	fc := cfg.Figure()
	fc.OnVerticesChange = app.verticesChanged
	app.Figure.figure = figure.New(fc)
	app.Figure.config = cfg
	app.Figure.figure.Resize(width, height)
}

func (app *App) verticesChanged(t geometry.Triangle) {
	app.Figure.changes++
	app.Figure.config.SetTriangle(t)
}

// Run opens the window and runs the main loop until it is closed
func Run(cfg config.Config, configPath string) error {
	app := New(cfg, configPath)

	// Initialize window
	screenWidth := int32(cfg.Render.Width)
	screenHeight := int32(cfg.Render.Height)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "GoTriangle")
	rl.SetTargetFPS(60)

	if configPath != "" {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	// Go Regular ships with x/image, large base size for crisp HiDPI text
	charsToLoad := []rune("°")
	for r := ' '; r <= '~'; r++ {
		charsToLoad = append(charsToLoad, r)
	}
	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 64, charsToLoad)
	app.UI.hasFont = app.UI.font.Texture.ID != 0

	for {
		// ESC cancels a drag instead of closing the window
		if rl.WindowShouldClose() && !rl.IsKeyPressed(rl.KeyEscape) {
			break
		}

		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.applyReload()

		// Update
		app.Figure.figure.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		app.handleInput()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rlColor(app.View.style.Background))
		app.drawScene()
		app.drawUI()
		rl.EndDrawing()
	}

	// Cleanup
	if app.UI.hasFont {
		rl.UnloadFont(app.UI.font)
	}
	rl.CloseWindow()
	return nil
}

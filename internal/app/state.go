package app

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/render"
	"github.com/philipparndt/gotriangle/pkg/watcher"
)

// FigureState holds the figure and the configuration it was built from
type FigureState struct {
	figure *figure.Figure
	config config.Config
	// changes counts vertex changes since start, shown in the status line
	changes int
}

// ViewSettings holds display settings
type ViewSettings struct {
	style    render.Style
	showHelp bool
	showInfo bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	hoveredVertex int
	mouseDownPos  rl.Vector2
	mouseMoved    bool
	mouseOnScreen bool
	lastMousePos  rl.Vector2
}

// FileWatchState holds file watching and reload state. Reloads arrive on
// the watcher's goroutine and are applied on the main thread.
type FileWatchState struct {
	sourceFile  string
	fileWatcher *watcher.FileWatcher

	mu          sync.Mutex
	needsReload bool
	loaded      config.Config
	loadErr     error

	lastError string
}

// UIState holds UI-related state
type UIState struct {
	font     rl.Font
	hasFont  bool
	fontSize float32
}

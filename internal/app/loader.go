package app

import (
	"fmt"

	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/philipparndt/gotriangle/pkg/watcher"
)

// setupFileWatcher reloads the configuration file when it changes
func (app *App) setupFileWatcher() error {
	fw, err := watcher.WatchConfig(app.FileWatch.sourceFile, watcher.DefaultDebounce, app.configChanged)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", app.FileWatch.sourceFile, err)
	}

	fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)
	app.FileWatch.fileWatcher = fw
	return nil
}

// configChanged runs on the watcher goroutine
func (app *App) configChanged(cfg config.Config, err error) {
	fmt.Printf("\nFile changed: %s\n", app.FileWatch.sourceFile)

	app.FileWatch.mu.Lock()
	defer app.FileWatch.mu.Unlock()
	app.FileWatch.needsReload = true
	app.FileWatch.loaded = cfg
	app.FileWatch.loadErr = err
}

// applyReload applies a pending reload (must be called on main thread). An
// invalid file keeps the current figure.
func (app *App) applyReload() {
	app.FileWatch.mu.Lock()
	if !app.FileWatch.needsReload {
		app.FileWatch.mu.Unlock()
		return
	}
	cfg, err := app.FileWatch.loaded, app.FileWatch.loadErr
	app.FileWatch.needsReload = false
	app.FileWatch.mu.Unlock()

	if err != nil {
		fmt.Printf("Error reloading configuration: %v\n", err)
		app.FileWatch.lastError = err.Error()
		return
	}

	app.FileWatch.lastError = ""
	app.Interaction.hoveredVertex = -1
	app.applyConfig(cfg)
	fmt.Println("Configuration reloaded successfully!")
}

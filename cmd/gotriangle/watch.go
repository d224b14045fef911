package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	watchConfigPath string
	watchOutput     string
	watchFormat     string
	watchDebounce   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the figure whenever its config file changes",
	Args:  cobra.NoArgs,
	Run:   runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchConfigPath, "config", "c", "", "YAML figure configuration to watch")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output file")
	watchCmd.Flags().StringVarP(&watchFormat, "format", "f", "", "Output format: svg or png")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet time before reloading")
	_ = watchCmd.MarkFlagRequired("config")
	_ = watchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(watchCmd)
}

type reload struct {
	cfg config.Config
	err error
}

func runWatch(cmd *cobra.Command, args []string) {
	au := colors()
	format := outputFormat(watchFormat, watchOutput, false)

	cfg, err := config.Load(watchConfigPath)
	if err != nil {
		fail("loading configuration", err)
	}
	if err := renderTo(cfg, format); err != nil {
		fail("rendering", err)
	}

	// Reloads arrive on timer goroutines; render them one at a time here
	reloads := make(chan reload, 1)
	fw, err := watcher.WatchConfig(watchConfigPath, watchDebounce, func(cfg config.Config, err error) {
		reloads <- reload{cfg, err}
	})
	if err != nil {
		fail("watching configuration", err)
	}
	defer fw.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	fmt.Printf("Watching %s, writing %s\n", au.Cyan(watchConfigPath), au.Cyan(watchOutput))
	for {
		select {
		case r := <-reloads:
			if r.err != nil {
				fmt.Printf("Warning: %v\n", r.err)
				continue
			}
			if err := renderTo(r.cfg, format); err != nil {
				fmt.Printf("Warning: %v\n", err)
				continue
			}
			fmt.Printf("%s re-rendered %s\n", au.Green(time.Now().Format("15:04:05")), watchOutput)

		case <-interrupt:
			return
		}
	}
}

func renderTo(cfg config.Config, format string) error {
	return writeFigure(figure.New(cfg.Figure()), cfg, format, watchOutput)
}

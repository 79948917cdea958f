package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/meshdrift/window"
)

func windowCmd(a *app) *cobra.Command {
	var (
		width, height int
		title         string
		stats         bool
	)

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Run in a desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("width") {
				cfg.Window.Width = width
			}
			if flags.Changed("height") {
				cfg.Window.Height = height
			}
			if flags.Changed("title") {
				cfg.Window.Title = title
			}
			if flags.Changed("stats") {
				cfg.Display.Stats = stats
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Printf("window host: %dx%d %q", cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
			return window.Run(window.Options{
				Width:          cfg.Window.Width,
				Height:         cfg.Window.Height,
				Title:          cfg.Window.Title,
				Stats:          cfg.Display.Stats,
				OnPointerEnter: a.chime(),
				Simulation:     a.simOptions(cmd),
			})
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&width, "width", 0, "Window width (default from config)")
	fl.IntVar(&height, "height", 0, "Window height (default from config)")
	fl.StringVar(&title, "title", "", "Window title (default from config)")
	fl.BoolVar(&stats, "stats", false, "Show the stats line (toggle with s)")
	return cmd
}

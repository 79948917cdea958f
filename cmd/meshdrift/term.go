package main

import (
	"context"
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/meshdrift/terminal"
)

// termFlags are shared by the root command and `term`
type termFlags struct {
	color string
	units float64
	stats bool
}

func (f *termFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.color, "color", "auto", "Color mode: auto, truecolor, 256")
	fl.Float64Var(&f.units, "units", 0, "Surface units per braille dot (default from config)")
	fl.BoolVar(&f.stats, "stats", false, "Show the stats line (toggle with s)")
}

func termCmd(a *app) *cobra.Command {
	tf := &termFlags{}
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTerm(cmd, tf)
		},
	}
	tf.bind(cmd)
	return cmd
}

func (a *app) runTerm(cmd *cobra.Command, tf *termFlags) error {
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Display.Color = tf.color
	}
	if flags.Changed("units") {
		cfg.Display.Units = tf.units
	}
	if flags.Changed("stats") {
		cfg.Display.Stats = tf.stats
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mode, err := terminal.ParseColorMode(cfg.Display.Color)
	if err != nil {
		return err
	}

	svc := terminal.NewService()
	if err := svc.Init(nil); err != nil {
		return err
	}
	defer svc.Stop()

	host, err := terminal.NewHost(svc.Screen(), terminal.Options{
		Color:          mode,
		Units:          cfg.Display.Units,
		Stats:          cfg.Display.Stats,
		OnPointerEnter: a.chime(),
		Simulation:     a.simOptions(cmd),
	})
	if err != nil {
		return err
	}
	if err := svc.Start(); err != nil {
		return err
	}

	log.Printf("terminal host running: color=%s units=%v", mode, cfg.Display.Units)
	err = host.Run(cmd.Context(), svc.Events())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

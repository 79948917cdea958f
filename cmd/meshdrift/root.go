package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/meshdrift/audio"
	"github.com/lixenwraith/meshdrift/config"
	"github.com/lixenwraith/meshdrift/mesh"
)

var version = "0.3.0"

// app carries state shared by every subcommand
type app struct {
	configPath string
	debug      bool
	sound      bool
	seed       uint64

	cfg     *config.Config
	logFile *os.File
	sounds  *audio.SoundManager
}

func newRootCmd(a *app) *cobra.Command {
	tf := &termFlags{}

	root := &cobra.Command{
		Use:   "meshdrift",
		Short: "meshdrift - drifting nodes linked by proximity lines",
		Long: Brand.Sprint("meshdrift") + " - an animated mesh of drifting nodes that shy away from the pointer\n" +
			Subtle.Sprint("Runs in the terminal by default; see `window` and `snapshot` for other hosts"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTerm(cmd, tf)
		},
	}

	root.SetVersionTemplate("meshdrift {{ .Version }}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (.toml, .yaml, .yml); default "+config.DefaultPath())
	pf.BoolVar(&a.debug, "debug", false, "Write debug logs under the log directory")
	pf.Uint64Var(&a.seed, "seed", 0, "Random seed for a reproducible mesh")
	pf.BoolVar(&a.sound, "sound", false, "Chime when the pointer enters")

	tf.bind(root)
	root.AddCommand(
		termCmd(a),
		windowCmd(a),
		snapshotCmd(a),
		configCmd(a),
	)
	return root
}

// prepare loads the config file, applies persistent flags and starts logging
func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Log.Debug = a.debug
	}
	if flags.Changed("sound") {
		cfg.Audio.Sound = a.sound
	}
	a.cfg = cfg

	logDir = cfg.Log.Dir
	a.logFile = setupLogging(cfg.Log.Debug)
	log.Printf("meshdrift %s: command %q", version, cmd.Name())
	return nil
}

// simOptions returns the simulation options implied by persistent flags
func (a *app) simOptions(cmd *cobra.Command) []mesh.Option {
	if cmd.Flags().Changed("seed") {
		return []mesh.Option{mesh.WithSeed(a.seed)}
	}
	return nil
}

// chime returns the pointer-enter callback, nil when sound is off or unavailable
func (a *app) chime() func() {
	if a.cfg == nil || !a.cfg.Audio.Sound {
		return nil
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing without sound: %v", err)
		return nil
	}
	a.sounds = sm
	return sm.PlayChime
}

func (a *app) close() {
	if a.sounds != nil {
		a.sounds.Cleanup()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

func configCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.WriteTOML(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
}

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"git.sr.ht/~gioverse/ninechat/internal/config"
	"git.sr.ht/~gioverse/ninechat/profile"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	profile    string
	verbose    bool

	cfg      *config.Config
	log      *log.Logger
	profiler *profile.Profiler
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ninepatch",
		Short: "Inspect and scale 9-Patch images",
		Long: `ninepatch reads 9-Patch PNG images (the 1px black guide border marks the
stretchable bands and the content area) and renders them at any size at or
above the size of their corners.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: "+config.Name+" in the XDG config home and working directory)")
	flags.StringVar(&a.profile, "profile", "", "profile mode: none, cpu, mem, block, goroutine, mutex, trace (overrides config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newScaleCmd(a),
		newFitCmd(a),
		newInspectCmd(a),
	)
	// The profile must be flushed whether or not the command succeeds.
	for _, sub := range root.Commands() {
		run := sub.RunE
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			defer a.profiler.Stop()
			return run(cmd, args)
		}
	}
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	out := io.Discard
	if a.verbose {
		out = cmd.ErrOrStderr()
	}
	a.log = log.New(out, "ninepatch: ", 0)

	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	mode := profile.Opt(a.cfg.Profile)
	if a.profile != "" {
		mode = profile.Opt(a.profile)
	}
	if mode == profile.Gio {
		return fmt.Errorf("profile %q needs a window, use the example program", mode)
	}
	if a.profiler, err = mode.Start(a.cfg.OutputDir); err != nil {
		return err
	}
	if mode != profile.None && mode != "" {
		a.log.Printf("profiling %s", mode)
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/internal/adapter"
	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/internal/engine"
	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/internal/theme"
	"github.com/alexisbeaulieu97/stylekit/internal/variant"
)

// appContext bundles the services a command needs.
type appContext struct {
	Config   *config.Config
	Logger   *logger.Logger
	Backends *adapter.Backends
	Registry *variant.Registry
	Engine   *engine.Engine
}

// themeFlags lets a command override the configured design and mode.
type themeFlags struct {
	design string
	mode   string
}

func (f *themeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.design, "design", "", "Design language (flat, neumorphic, skeuomorphic, glassmorphic, retro, material, simplistic)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "Colour mode (light, dark)")
}

func loadAppContext(cmd *cobra.Command, operation string, flags *rootFlags, tf *themeFlags) (*appContext, error) {
	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		parsed, err := config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, newCommandError(operation, "loading configuration", err, "Fix the reported field in the configuration file and try again.")
		}
		cfg = parsed
	}

	if tf != nil {
		if tf.design != "" {
			if _, ok := theme.ParseDesign(tf.design); !ok {
				return nil, newCommandError(operation, "reading --design", fmt.Errorf("unknown design %q", tf.design), "Use one of: "+designList()+".")
			}
			cfg.Theme.Design = tf.design
		}
		if tf.mode != "" {
			if _, ok := theme.ParseMode(tf.mode); !ok {
				return nil, newCommandError(operation, "reading --mode", fmt.Errorf("unknown mode %q", tf.mode), "Use light or dark.")
			}
			cfg.Theme.Mode = tf.mode
		}
	}

	logOpts := cfg.LoggerOptions()
	logOpts.Writer = cmd.ErrOrStderr()
	if flags.verbose {
		logOpts.Level = "debug"
		logOpts.HumanReadable = true
	}
	log, err := logger.New(logOpts)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Set logging.level to debug, info, warn or error.")
	}

	backends := adapter.NewBackends()
	if err := cfg.RegisterBackends(backends); err != nil {
		return nil, newCommandError(operation, "registering backends", err, "Give every configured backend a unique id.")
	}

	registry := variant.NewRegistry(log)
	eng := engine.New(engine.Options{
		Theme:         cfg.ComposeTheme(),
		CacheCapacity: cfg.Cache.Capacity,
		Registry:      registry,
		Logger:        log,
	})

	return &appContext{Config: cfg, Logger: log, Backends: backends, Registry: registry, Engine: eng}, nil
}

func designList() string {
	names := make([]string, 0, len(theme.Designs()))
	for _, d := range theme.Designs() {
		names = append(names, d.String())
	}
	return strings.Join(names, ", ")
}

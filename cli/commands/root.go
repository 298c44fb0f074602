package commands

import (
	"github.com/rotasegura/beacon/internal/candidate"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/core"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// commands annotated with this key run without loading configuration
const skipConfig = "skip-config"

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Conf    *config.Config
	appCore *core.Core
}

// Core returns the app core for the loaded configuration, creating it on
// first use
func (p *CommandProps) Core() (*core.Core, error) {
	if p.appCore != nil {
		return p.appCore, nil
	}

	appCore, err := core.CreateNewAppCore(*p.Conf)

	if err != nil {
		return nil, err
	}

	p.appCore = appCore

	return appCore, nil
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "beacon",
		Short: "Finds a live routing backend without static configuration",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			if cmd.Annotations[skipConfig] == "true" {
				return nil
			}

			if configPath == "" {
				configPath = viper.GetString("config-file")
			}

			conf, err := config.Load(configPath)

			if err != nil {
				return err
			}

			// flag wins over BEACON_PLATFORM which wins over the file
			if tag := viper.GetString("platform"); tag != "" {
				conf.Platform = tag
			}

			platform, err := candidate.ParsePlatform(conf.Platform)

			if err != nil {
				return err
			}

			conf.Platform = string(platform)

			props.Conf = conf

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchMonitor(props)
		},
		SilenceUsage: true,
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to yaml config file")
	cmd.PersistentFlags().StringP(
		"platform",
		"p",
		"",
		"runtime platform: emulator-android, simulator-ios, web or device",
	)

	viper.BindPFlag("platform", cmd.PersistentFlags().Lookup("platform"))

	cmd.AddCommand(resolve(props))
	cmd.AddCommand(candidates(props))
	cmd.AddCommand(status(props))
	cmd.AddCommand(route(props))
	cmd.AddCommand(history(props))
	cmd.AddCommand(monitor(props))
	cmd.AddCommand(info(props))
	cmd.AddCommand(initConfig())
	cmd.AddCommand(clear())
	cmd.AddCommand(version())

	return cmd
}

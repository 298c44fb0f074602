package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/rotasegura/beacon/cli/commands"
	app_info "github.com/rotasegura/beacon/internal/app-info"
	"github.com/rotasegura/beacon/internal/config"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/spf13/viper"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRuntTimeConfig() error {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return err
	}

	logFile := path.Join(configDir, app_info.NAME+".log")

	configFile := path.Join(configDir, "config.yaml")

	// share run-time config globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)

	// BEACON_PLATFORM and friends
	viper.SetEnvPrefix("BEACON")
	viper.AutomaticEnv()

	return nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	if err := config.LoadEnv(".env"); err != nil {
		log.Fatal().Err(err).Msg("failed to load .env")
	}

	err := setRuntTimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{})

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

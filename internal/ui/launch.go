package ui

import (
	"fmt"
	"os"

	"github.com/rotasegura/beacon/internal/core"
	"github.com/rotasegura/beacon/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var originalStdout = os.Stdout
var originalStderr = os.Stderr

func restoreStdout() {
	os.Stdout = originalStdout
	os.Stderr = originalStderr
}

// UI terminal monitor of the discovery subsystem
type UI struct {
	appCore *core.Core
}

// NewUI returns a new instance of UI
func NewUI(appCore *core.Core) *UI {
	return &UI{appCore: appCore}
}

// Launch takes over the terminal until the user quits. Logs are redirected
// to the log file so they do not corrupt the screen.
func (u *UI) Launch() error {
	log := logger.New()

	level := zerolog.GlobalLevel()

	if level != zerolog.Disabled {
		logFile, ok := viper.Get("log-file").(string)

		if !ok || logFile == "" {
			log.Error().Err(
				fmt.Errorf("invalid log file path: %s", logFile),
			).Msg("")
			log.Info().Msg("disabling logs")
			zerolog.SetGlobalLevel(zerolog.Disabled)
		} else {
			if err := logger.GlobalSetLogFile(logFile); err != nil {
				log.Error().Err(err).Msg("")
				log.Info().Msg("disabling logs")
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}
		}
	}

	view := newView(u.appCore)

	os.Stdout, _ = os.Open(os.DevNull)
	os.Stderr, _ = os.Open(os.DevNull)

	defer restoreStdout()

	return view.run()
}

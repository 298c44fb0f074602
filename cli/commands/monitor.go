package commands

import (
	"github.com/rotasegura/beacon/internal/ui"
	"github.com/spf13/cobra"
)

func launchMonitor(props *CommandProps) error {
	appCore, err := props.Core()

	if err != nil {
		return err
	}

	return ui.NewUI(appCore).Launch()
}

// creates and returns the "monitor" command
func monitor(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Watches discovery live in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return launchMonitor(props)
		},
	}

	return cmd
}

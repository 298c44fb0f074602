package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// creates and returns the "candidates" command
func candidates(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Prints the hosts a sweep would probe, in priority order",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.Core()

			if err != nil {
				return err
			}

			tw := newTabWriter(cmd.OutOrStdout())

			fmt.Fprintf(tw, "platform: %s\n", appCore.Conf().Platform)
			fmt.Fprintln(tw, bold("PRIORITY\tHOST\tRATIONALE"))

			for i, c := range appCore.Candidates() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, c.Host, c.Rationale)
			}

			return tw.Flush()
		},
	}

	return cmd
}

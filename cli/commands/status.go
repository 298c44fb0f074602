package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// creates and returns the "status" command
func status(props *CommandProps) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Checks every service port on the discovered backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.Core()

			if err != nil {
				return err
			}

			report, err := appCore.Status(cmd.Context())

			if err != nil {
				return err
			}

			if asJSON {
				return encodeJSON(cmd.OutOrStdout(), report)
			}

			tw := newTabWriter(cmd.OutOrStdout())

			fmt.Fprintf(tw, "host: %s\n", report.Host)
			fmt.Fprintln(tw, bold("PORT\tSTATUS\tLATENCY"))

			for _, p := range report.Ports {
				state := green("online")

				if !p.Online {
					state = red(fmt.Sprintf("offline (%s)", p.Error))
				}

				fmt.Fprintf(tw, "%d\t%s\t%s\n", p.Port, state, p.Latency.Round(time.Millisecond))
			}

			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print report as json")

	return cmd
}

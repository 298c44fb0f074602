package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/rotasegura/beacon/internal/discovery"
	"github.com/spf13/cobra"
)

type resolvedOutput struct {
	Host         string    `json:"host"`
	Ports        []int     `json:"ports"`
	BaseURL      string    `json:"base_url"`
	DiscoveredAt time.Time `json:"discovered_at"`
}

// creates and returns the "resolve" command
func resolve(props *CommandProps) *cobra.Command {
	var force bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Discovers the backend endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.Core()

			if err != nil {
				return err
			}

			ep, err := appCore.Resolve(cmd.Context(), force)

			if err != nil {
				exhausted := &discovery.ExhaustedError{}

				if errors.As(err, &exhausted) {
					printProbeResults(cmd.ErrOrStderr(), exhausted.Results)
				}

				return err
			}

			port := ep.Port(appCore.Conf().Ports)

			if asJSON {
				return encodeJSON(cmd.OutOrStdout(), resolvedOutput{
					Host:         ep.Host(),
					Ports:        ep.VerifiedPorts(),
					BaseURL:      ep.BaseURL(port),
					DiscoveredAt: ep.DiscoveredAt(),
				})
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s %s (verified ports %v)\n",
				green("backend"),
				ep.BaseURL(port),
				ep.VerifiedPorts(),
			)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "sweep even if an endpoint is cached")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print result as json")

	return cmd
}

package commands

import (
	"fmt"
	"time"

	"github.com/rotasegura/beacon/internal/logger"
	"github.com/spf13/cobra"
)

// creates and returns the "history" command
func history(props *CommandProps) *cobra.Command {
	var force bool
	var showProbes bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Resolves the backend and prints the sweeps it took",
		Long: "Resolves the backend and prints the sweeps it took. The journal " +
			"lives in memory so only sweeps of this invocation are shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			appCore, err := props.Core()

			if err != nil {
				return err
			}

			if _, err := appCore.Resolve(cmd.Context(), force); err != nil {
				log.Warn().Err(err).Msg("resolve failed")
			}

			sweeps, err := appCore.History()

			if err != nil {
				return err
			}

			for _, s := range sweeps {
				outcome := green(string(s.Outcome))

				if s.Host == "" {
					outcome = red(string(s.Outcome))
				}

				fmt.Fprintf(
					cmd.OutOrStdout(),
					"%s %s %s probes=%d duration=%s forced=%t %s\n",
					yellow(s.ID),
					s.StartedAt.Local().Format(time.RFC3339),
					outcome,
					len(s.Probes),
					s.Duration().Round(time.Millisecond),
					s.Forced,
					s.Host,
				)

				if showProbes {
					printProbeResults(cmd.OutOrStdout(), s.Probes)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force a sweep")
	cmd.Flags().BoolVar(&showProbes, "probes", false, "print every probe of each sweep")

	return cmd
}

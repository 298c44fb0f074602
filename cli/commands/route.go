package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// creates and returns the "route" command and its subcommands
func route(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Sends routing requests to the discovered backend",
	}

	cmd.AddCommand(calculateRoute(props))
	cmd.AddCommand(geocode(props))
	cmd.AddCommand(analyzeStreet(props))
	cmd.AddCommand(trainAI(props))

	return cmd
}

func calculateRoute(props *CommandProps) *cobra.Command {
	var from string
	var to string
	var currentTime string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculates the safest route between two addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.Core()

			if err != nil {
				return err
			}

			data, err := appCore.API().CalculateRoute(cmd.Context(), from, to, currentTime)

			if err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), data)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start address")
	cmd.Flags().StringVar(&to, "to", "", "destination address")
	cmd.Flags().StringVar(&currentTime, "time", "", "time of travel as HH:MM, defaults to now")

	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

func geocode(props *CommandProps) *cobra.Command {
	var city string

	cmd := &cobra.Command{
		Use:   "geocode ADDRESS",
		Short: "Resolves an address to coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.Core()

			if err != nil {
				return err
			}

			data, err := appCore.API().Geocode(cmd.Context(), strings.Join(args, " "), city)

			if err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), data)

			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city to search in")

	return cmd
}

func analyzeStreet(props *CommandProps) *cobra.Command {
	var currentTime string

	cmd := &cobra.Command{
		Use:   "analyze-street STREET",
		Short: "Analyzes the safety of a street",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.Core()

			if err != nil {
				return err
			}

			data, err := appCore.API().AnalyzeStreet(cmd.Context(), strings.Join(args, " "), currentTime)

			if err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), data)

			return nil
		},
	}

	cmd.Flags().StringVar(&currentTime, "time", "", "time of travel as HH:MM, defaults to now")

	return cmd
}

func trainAI(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train-ai",
		Short: "Asks the backend to retrain its safety model",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.Core()

			if err != nil {
				return err
			}

			data, err := appCore.API().TrainAI(cmd.Context())

			if err != nil {
				return err
			}

			printJSON(cmd.OutOrStdout(), data)

			return nil
		},
	}

	return cmd
}

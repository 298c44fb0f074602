package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/rotasegura/beacon/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "init" command
func initConfig() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Writes the default config file",
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := viper.GetString("config-file")

			if _, err := os.Stat(configFile); err == nil && !overwrite {
				return fmt.Errorf("config file already exists: %s", configFile)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.Write(*config.Default()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configFile)

			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing config file")

	return cmd
}

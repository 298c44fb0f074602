package commands

import (
	"fmt"
	"os"

	app_info "github.com/rotasegura/beacon/internal/app-info"
	"github.com/rotasegura/beacon/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "info" command
func info(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s: %s\n\n", app_info.NAME, app_info.VERSION)
			fmt.Fprintf(out, "config file: %s\n", viper.GetString("config-file"))
			fmt.Fprintf(out, "log file: %s\n", viper.GetString("log-file"))
			fmt.Fprintf(out, "platform: %s\n", props.Conf.Platform)
			fmt.Fprintf(out, "application ports: %v\n", props.Conf.Ports)

			if host, err := os.Hostname(); err == nil {
				fmt.Fprintf(out, "hostname: %s\n", host)
			}

			local, err := util.DetectLocalNetwork()

			if err != nil {
				fmt.Fprintf(out, "network: %s\n", red(err.Error()))
				return
			}

			fmt.Fprintf(out, "interface: %s\n", local.Interface)
			fmt.Fprintf(out, "ip: %s\n", local.IP)
			fmt.Fprintf(out, "network: %s\n", local.Cidr)
		},
	}

	return cmd
}

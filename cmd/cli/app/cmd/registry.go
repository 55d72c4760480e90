package cmd

import (
	"appctl/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(registryCmd)
	registryCmd.AddCommand(registryLoginCmd)
}

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manage registry credentials",
}

var registryLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the registry password in the OS keyring",
	Long: `Prompts for the password of the configured registry user and stores it in
the OS keyring. It is used whenever the config file sets auth BASIC without
a password.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectRegistryLoginCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}

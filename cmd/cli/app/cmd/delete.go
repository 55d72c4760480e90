package cmd

import (
	"appctl/cmd/cli/app"

	"github.com/spf13/cobra"
)

var deleteKeepImage bool

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVar(&deleteKeepImage, "keep-image", false, "keep the application image in the registry")
}

var deleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Remove an application",
	Long: `Deletes the Knative service, build job and credentials secret of an
application, then its image manifest. Resources that do not exist are
skipped.`,
	Example: `  appctl delete myapp
  appctl delete myapp --keep-image`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectDeleteCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), args[0], deleteKeepImage)
	},
}

package cmd

import (
	"appctl/cmd/cli/app"
	"appctl/internal/core/handler"

	"github.com/spf13/cobra"
)

var deployEnv []string

func init() {
	rootCmd.AddCommand(deployCmd)
	addEnvFlag(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy NAME",
	Short: "Run an application image as a Knative service",
	Long: `Creates or updates the Knative service of an application. The service runs
the image built by 'appctl build' with the given environment variables added
to the template's environment.`,
	Example: `  appctl deploy myapp
  appctl deploy myapp --env LOG_LEVEL=debug --env DB_URL=postgres://db`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := handler.ParseEnvAssignments(deployEnv)
		if err != nil {
			return err
		}

		deployHandler, err := app.InjectDeployCommandHandler()
		if err != nil {
			return err
		}

		return deployHandler.Handle(cmd.Context(), args[0], env)
	},
}

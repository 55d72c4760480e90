package cmd

import (
	"appctl/cmd/cli/app"
	"appctl/internal/core/handler"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.AddCommand(renderBuildCmd)
	renderCmd.AddCommand(renderDeployCmd)
	addBuildFlags(renderBuildCmd)
	addEnvFlag(renderDeployCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print manifests without applying them",
	Long: `Prints the manifests that 'appctl build' or 'appctl deploy' would apply, as
YAML documents on stdout. Nothing is sent to the cluster.`,
}

var renderBuildCmd = &cobra.Command{
	Use:     "build NAME",
	Short:   "Print the credentials Secret and build Job",
	Example: `  appctl render build myapp --sources s3://bucket/src.zip --runtime python3.11 | kubectl apply -f -`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequest(args[0])
		if err != nil {
			return err
		}

		renderHandler, err := app.InjectRenderCommandHandler()
		if err != nil {
			return err
		}

		return renderHandler.HandleBuild(cmd.OutOrStdout(), request)
	},
}

var renderDeployCmd = &cobra.Command{
	Use:     "deploy NAME",
	Short:   "Print the Knative service",
	Example: `  appctl render deploy myapp --env LOG_LEVEL=debug`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := handler.ParseEnvAssignments(deployEnv)
		if err != nil {
			return err
		}

		renderHandler, err := app.InjectRenderCommandHandler()
		if err != nil {
			return err
		}

		return renderHandler.HandleDeploy(cmd.OutOrStdout(), args[0], env)
	},
}

package cmd

import (
	"appctl/cmd/cli/app"

	"github.com/spf13/cobra"
)

var (
	buildSources string
	buildRuntime string
	buildApiKey  string
	buildJwt     string
)

func init() {
	rootCmd.AddCommand(buildCmd)
	addBuildFlags(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build NAME",
	Short: "Build an application image in the cluster",
	Long: `Applies the credentials Secret and the build Job for an application. The
job pulls the sources, builds them on top of the runtime's base image and
pushes the result to the configured registry. An existing build job of the
same application is replaced.`,
	Example: `  # Build from an archive with the python 3.11 runtime
  appctl build myapp --sources s3://bucket/src.zip --runtime python3.11

  # Pass an API key to the build
  appctl build myapp -s s3://bucket/src.zip -r python3.12 --api-key $API_KEY`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequest(args[0])
		if err != nil {
			return err
		}

		handler, err := app.InjectBuildCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(cmd.Context(), request)
	},
}

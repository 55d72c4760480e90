package cmd

import (
	"appctl/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.AddCommand(imageDigestCmd)
	imageCmd.AddCommand(imageDeleteCmd)
}

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Inspect and remove application images in the registry",
}

var imageDigestCmd = &cobra.Command{
	Use:   "digest NAME...",
	Short: "Show the manifest digest of application images",
	Long: `Resolves the digest of the configured image label for each application.
OCI manifests are preferred; Docker v2 manifests are used when the registry
has no OCI manifest. Images missing from the registry are reported.`,
	Example: `  appctl image digest myapp other-app`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectImageCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDigest(cmd.Context(), args)
	},
}

var imageDeleteCmd = &cobra.Command{
	Use:   "delete NAME...",
	Short: "Delete application image manifests from the registry",
	Long: `Deletes the manifest the configured image label points to for each
application. The registry must allow deletes; blobs are reclaimed by the
registry's garbage collection.`,
	Example: `  appctl image delete myapp`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectImageCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleDelete(cmd.Context(), args)
	},
}

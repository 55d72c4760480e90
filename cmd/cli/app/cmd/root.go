package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"appctl/internal/cli/logging"

	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "appctl",
	Short: "Build and run applications on Kubernetes and Knative",
	Long: `appctl turns application sources into running Knative services. It
materializes a credentials Secret, a build Job and a Knative Service from
templates, applies them to the cluster and manages the resulting images in
the container registry.

Configuration is stored in ~/.appctl-config.yaml (override with APPCTL_CONFIG).
Run 'appctl init' to create a sample configuration and templates.

Common workflows:
  appctl build myapp --sources s3://bucket/src.zip --runtime python3.11
  appctl deploy myapp --env LOG_LEVEL=debug
  appctl image digest myapp
  appctl delete myapp`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Configure(os.Stderr, logging.ResolveLevel(logLevel))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (default from "+logging.LevelEnv+" or "+logging.DefaultLevel+")")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"

	"appctl/cmd/cli/app"
	"appctl/internal/core/handler"

	"github.com/spf13/cobra"
)

func RuntimeCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	configRepo, err := app.InjectConfigRepo()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	config, err := configRepo.LoadRawConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return config.RuntimeNames(), cobra.ShellCompDirectiveNoFileComp
}

func buildRequest(name string) (handler.BuildRequest, error) {
	if buildSources == "" {
		return handler.BuildRequest{}, fmt.Errorf("--sources is required")
	}
	if buildRuntime == "" {
		return handler.BuildRequest{}, fmt.Errorf("--runtime is required")
	}
	return handler.BuildRequest{
		Name:    name,
		Sources: buildSources,
		Runtime: buildRuntime,
		ApiKey:  buildApiKey,
		Jwt:     buildJwt,
	}, nil
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&buildSources, "sources", "s", "", "location of the application sources passed to the puller")
	cmd.Flags().StringVarP(&buildRuntime, "runtime", "r", "", "runtime profile to build with")
	cmd.Flags().StringVar(&buildApiKey, "api-key", "", "API key exposed to the build")
	cmd.Flags().StringVar(&buildJwt, "jwt", "", "JWT exposed to the build")
	_ = cmd.RegisterFlagCompletionFunc("runtime", RuntimeCompletion)
}

func addEnvFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&deployEnv, "env", "e", nil, "environment variable KEY=VALUE for the service (repeatable)")
}

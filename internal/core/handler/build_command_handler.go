package handler

import (
	"context"
	"fmt"

	"appctl/internal/cli/output"
	"appctl/internal/core"
	"appctl/internal/ports"
)

type BuildCommandHandler struct {
	configRepository core.ConfigRepository
	manifestBuilder  *core.ManifestBuilder
	orchestrator     ports.ContainerOrchestrator
}

func ProvideBuildCommandHandler(
	configRepository core.ConfigRepository,
	manifestBuilder *core.ManifestBuilder,
	orchestrator ports.ContainerOrchestrator,
) BuildCommandHandler {
	return BuildCommandHandler{
		configRepository: configRepository,
		manifestBuilder:  manifestBuilder,
		orchestrator:     orchestrator,
	}
}

type BuildRequest struct {
	Name    string
	Sources string
	Runtime string
	ApiKey  string
	Jwt     string
}

// Handle submits the credentials Secret and the build Job of an application. The Secret
// is applied first since the Job's pods reference it.
func (h *BuildCommandHandler) Handle(ctx context.Context, request BuildRequest) error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	if _, err := config.GetRuntime(request.Runtime); err != nil {
		return withSuggestion(err, request.Runtime, config.RuntimeNames())
	}

	secret, err := h.manifestBuilder.BuildCredentials(request.Name, request.ApiKey, request.Jwt)
	if err != nil {
		return fmt.Errorf("failed to build credentials secret: %w", err)
	}
	job, err := h.manifestBuilder.BuildJob(request.Name, request.Sources, request.Runtime)
	if err != nil {
		return fmt.Errorf("failed to build job: %w", err)
	}

	output.PrintHeader(fmt.Sprintf("Building %s", request.Name))
	output.PrintStep(fmt.Sprintf("Applying secret %s", secret.Name))
	if err := h.orchestrator.ApplySecret(ctx, secret); err != nil {
		return err
	}
	output.PrintStep(fmt.Sprintf("Applying job %s", job.Name))
	if err := h.orchestrator.ApplyJob(ctx, job); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Build job %s submitted", job.Name))
	return nil
}

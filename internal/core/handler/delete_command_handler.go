package handler

import (
	"context"
	"fmt"

	"appctl/internal/cli/output"
	"appctl/internal/core/domain"
	"appctl/internal/ports"
)

type DeleteCommandHandler struct {
	orchestrator ports.ContainerOrchestrator
	registry     ports.ContainerImageRegistry
}

func ProvideDeleteCommandHandler(
	orchestrator ports.ContainerOrchestrator,
	registry ports.ContainerImageRegistry,
) DeleteCommandHandler {
	return DeleteCommandHandler{
		orchestrator: orchestrator,
		registry:     registry,
	}
}

// Handle removes everything created for an application. Resources that are already gone
// are skipped.
func (h *DeleteCommandHandler) Handle(ctx context.Context, name string, keepImage bool) error {
	output.PrintHeader(fmt.Sprintf("Deleting %s", name))

	output.PrintStep(fmt.Sprintf("Deleting service %s", domain.AppName(name)))
	if err := h.orchestrator.DeleteService(ctx, domain.AppName(name)); err != nil {
		return err
	}
	output.PrintStep(fmt.Sprintf("Deleting job %s", domain.BuildJobName(name)))
	if err := h.orchestrator.DeleteJob(ctx, domain.BuildJobName(name)); err != nil {
		return err
	}
	output.PrintStep(fmt.Sprintf("Deleting secret %s", domain.AuthSecretName(name)))
	if err := h.orchestrator.DeleteSecret(ctx, domain.AuthSecretName(name)); err != nil {
		return err
	}

	if !keepImage {
		output.PrintStep(fmt.Sprintf("Deleting image %s", h.registry.FullImageName(name)))
		dgst, err := deleteImage(ctx, h.registry, name)
		if err != nil {
			return fmt.Errorf("failed to delete image: %w", err)
		}
		if dgst == "" {
			output.PrintWarning("Image not found in the registry")
		}
	}

	output.PrintSuccess(fmt.Sprintf("Deleted %s", name))
	return nil
}

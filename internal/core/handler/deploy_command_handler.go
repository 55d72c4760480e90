package handler

import (
	"context"
	"fmt"
	"strings"

	"appctl/internal/cli/output"
	"appctl/internal/core"
	"appctl/internal/ports"
)

type DeployCommandHandler struct {
	manifestBuilder *core.ManifestBuilder
	orchestrator    ports.ContainerOrchestrator
}

func ProvideDeployCommandHandler(
	manifestBuilder *core.ManifestBuilder,
	orchestrator ports.ContainerOrchestrator,
) DeployCommandHandler {
	return DeployCommandHandler{
		manifestBuilder: manifestBuilder,
		orchestrator:    orchestrator,
	}
}

func (h *DeployCommandHandler) Handle(ctx context.Context, name string, env map[string]string) error {
	service, err := h.manifestBuilder.BuildService(name, env)
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}

	output.PrintHeader(fmt.Sprintf("Deploying %s", name))
	output.PrintStep(fmt.Sprintf("Applying service %s", service.Name))
	if err := h.orchestrator.ApplyService(ctx, service); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("Service %s deployed", service.Name))
	return nil
}

// ParseEnvAssignments turns KEY=VALUE arguments into a map. Values may contain '='; a
// repeated key keeps its last value.
func ParseEnvAssignments(assignments []string) (map[string]string, error) {
	env := make(map[string]string, len(assignments))
	for _, assignment := range assignments {
		key, value, found := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("invalid environment assignment '%s', expected KEY=VALUE", assignment)
		}
		env[key] = value
	}
	return env, nil
}

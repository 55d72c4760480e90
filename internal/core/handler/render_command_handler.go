package handler

import (
	"fmt"
	"io"

	"appctl/internal/core"

	"sigs.k8s.io/yaml"
)

// RenderCommandHandler prints materialized manifests instead of applying them
type RenderCommandHandler struct {
	configRepository core.ConfigRepository
	manifestBuilder  *core.ManifestBuilder
}

func ProvideRenderCommandHandler(
	configRepository core.ConfigRepository,
	manifestBuilder *core.ManifestBuilder,
) RenderCommandHandler {
	return RenderCommandHandler{
		configRepository: configRepository,
		manifestBuilder:  manifestBuilder,
	}
}

func (h *RenderCommandHandler) HandleBuild(w io.Writer, request BuildRequest) error {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return err
	}
	if _, err := config.GetRuntime(request.Runtime); err != nil {
		return withSuggestion(err, request.Runtime, config.RuntimeNames())
	}

	secret, err := h.manifestBuilder.BuildCredentials(request.Name, request.ApiKey, request.Jwt)
	if err != nil {
		return err
	}
	job, err := h.manifestBuilder.BuildJob(request.Name, request.Sources, request.Runtime)
	if err != nil {
		return err
	}

	return writeDocuments(w, secret, job)
}

func (h *RenderCommandHandler) HandleDeploy(w io.Writer, name string, env map[string]string) error {
	service, err := h.manifestBuilder.BuildService(name, env)
	if err != nil {
		return err
	}

	return writeDocuments(w, service)
}

func writeDocuments(w io.Writer, documents ...interface{}) error {
	for i, document := range documents {
		data, err := yaml.Marshal(document)
		if err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

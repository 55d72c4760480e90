package handler

import (
	"fmt"

	"appctl/internal/cli/output"
	"appctl/internal/core"
	"appctl/internal/core/domain"
	"appctl/internal/ports"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
	fileService      ports.FileSystem
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
	fileService ports.FileSystem,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
		fileService:      fileService,
	}
}

// Handle writes the default configuration and the sample templates it points to.
// Existing template files are left untouched.
func (h *InitializeCommandHandler) Handle() error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("config already exists")
	}

	config := domain.CreateDefaultConfig()
	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}
	output.PrintSuccess("Created default configuration")

	templates := []struct {
		path    string
		content string
	}{
		{config.Templates.Secret, core.SampleSecretTemplate},
		{config.Templates.Job, core.SampleJobTemplate},
		{config.Templates.Service, core.SampleServiceTemplate},
	}
	for _, template := range templates {
		exists, err := h.fileService.FileExists(template.path)
		if err != nil {
			return err
		}
		if exists {
			output.PrintWarning(fmt.Sprintf("Keeping existing template %s", template.path))
			continue
		}
		if err := h.fileService.WriteFile(template.path, []byte(template.content), ports.ReadAllWriteOwner); err != nil {
			return fmt.Errorf("failed to write template %s: %w", template.path, err)
		}
		output.PrintStep(fmt.Sprintf("Wrote %s", template.path))
	}

	return nil
}

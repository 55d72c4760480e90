package handler

import (
	"fmt"

	"appctl/internal/cli/output"
	"appctl/internal/core"
	"appctl/internal/core/domain"
	"appctl/internal/ports"
)

type RegistryLoginCommandHandler struct {
	configRepository core.ConfigRepository
	keyring          ports.Keyring
	terminalInput    ports.TerminalInput
}

func ProvideRegistryLoginCommandHandler(
	configRepository core.ConfigRepository,
	keyring ports.Keyring,
	terminalInput ports.TerminalInput,
) RegistryLoginCommandHandler {
	return RegistryLoginCommandHandler{
		configRepository: configRepository,
		keyring:          keyring,
		terminalInput:    terminalInput,
	}
}

// Handle prompts for the registry password and stores it in the OS keyring, where the
// configuration falls back to when the config file has no password.
func (h *RegistryLoginCommandHandler) Handle() error {
	config, err := h.configRepository.LoadRawConfig()
	if err != nil {
		return err
	}

	registry := config.Registry
	if registry.Auth != domain.AuthSchemeBasic {
		return fmt.Errorf("registry %s uses auth '%s'; login is only needed for '%s'", registry.Host, registry.Auth, domain.AuthSchemeBasic)
	}
	if registry.User == "" {
		return domain.NewConfigurationError("user and password are required for BASIC docker registry authentication")
	}
	if registry.Password != nil {
		output.PrintWarning("The config file sets registry.password, which takes precedence over the keyring")
	}
	if !h.terminalInput.IsTerminal() {
		return fmt.Errorf("registry login requires an interactive terminal")
	}

	password, err := h.terminalInput.ReadPassword(fmt.Sprintf("Password for %s@%s: ", registry.User, registry.Host))
	if err != nil {
		return err
	}

	if err := h.keyring.SetKey(core.RegistryPasswordKeyName(registry.Host), password); err != nil {
		return fmt.Errorf("failed to store registry password: %w", err)
	}

	output.PrintSuccess(fmt.Sprintf("Stored password for %s@%s", registry.User, registry.Host))
	return nil
}

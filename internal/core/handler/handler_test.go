package handler

import (
	"appctl/internal/core"
	"appctl/internal/core/domain"
	"appctl/internal/testutil"

	"github.com/stretchr/testify/mock"
)

// newTestManifestBuilder wires a real ManifestBuilder to mocked configuration, templates
// and registry
func newTestManifestBuilder(config *domain.Config) (*core.ManifestBuilder, *testutil.MockConfigRepository, *testutil.MockContainerImageRegistry) {
	configRepository := new(testutil.MockConfigRepository)
	configRepository.On("LoadConfig").Return(config, nil)

	templateRepository := new(testutil.MockTemplateRepository)
	templateRepository.On("LoadTemplates").Return(testutil.NewTestTemplates(), nil)

	registry := new(testutil.MockContainerImageRegistry)
	registry.On("AuthScheme").Return(config.Registry.Auth).Maybe()
	registry.On("DockerConfig").Return(`{"auths":{}}`, nil).Maybe()
	registry.On("FullImageName", mock.AnythingOfType("string")).Return(func(name string) string {
		return config.Registry.FullImageName(name)
	}).Maybe()

	return core.ProvideManifestBuilder(configRepository, templateRepository, registry), configRepository, registry
}

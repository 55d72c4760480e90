//go:build wireinject
// +build wireinject

package app

import (
	"appctl/internal/adapters/container_image_registry"
	"appctl/internal/adapters/container_orchestrator"
	"appctl/internal/adapters/filesystem"
	"appctl/internal/adapters/keyring"
	"appctl/internal/adapters/templater"
	"appctl/internal/adapters/terminal"
	"appctl/internal/core"
	"appctl/internal/core/handler"
	"appctl/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	templater.ProvideTextTemplater,
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
	container_image_registry.ProvideHTTPRegistry,
	wire.Bind(new(ports.ContainerImageRegistry), new(*container_image_registry.HTTPRegistry)),
	container_orchestrator.ProvideKubernetes,
	wire.Bind(new(ports.ContainerOrchestrator), new(*container_orchestrator.Kubernetes)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideFileSystemTemplateRepository,
	wire.Bind(new(core.TemplateRepository), new(*core.FileSystemTemplateRepository)),
	core.ProvideManifestBuilder,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(CommandHandlerSet)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectBuildCommandHandler() (handler.BuildCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideBuildCommandHandler,
	)
	return handler.BuildCommandHandler{}, nil
}

func InjectDeployCommandHandler() (handler.DeployCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideDeployCommandHandler,
	)
	return handler.DeployCommandHandler{}, nil
}

func InjectRenderCommandHandler() (handler.RenderCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRenderCommandHandler,
	)
	return handler.RenderCommandHandler{}, nil
}

func InjectImageCommandHandler() (handler.ImageCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideImageCommandHandler,
	)
	return handler.ImageCommandHandler{}, nil
}

func InjectDeleteCommandHandler() (handler.DeleteCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideDeleteCommandHandler,
	)
	return handler.DeleteCommandHandler{}, nil
}

func InjectRegistryLoginCommandHandler() (handler.RegistryLoginCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRegistryLoginCommandHandler,
	)
	return handler.RegistryLoginCommandHandler{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

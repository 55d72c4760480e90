package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"appctl/internal/core/domain"
	"appctl/internal/ports"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "APPCTL_CONFIG"

var defaultConfigFilePath = filepath.Join("~", ".appctl-config.yaml")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	// LoadRawConfig parses the config file without consulting the keyring or validating it
	LoadRawConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

type FileSystemConfigRepository struct {
	fileService    ports.FileSystem
	keyring        ports.Keyring
	configFilePath string
	config         *domain.Config
}

func ProvideFileSystemConfigRepository(
	fileService ports.FileSystem,
	keyring ports.Keyring,
) *FileSystemConfigRepository {
	configFilePath := defaultConfigFilePath
	if path := os.Getenv(configPathEnv); path != "" {
		configFilePath = path
	}

	return &FileSystemConfigRepository{
		fileService:    fileService,
		keyring:        keyring,
		configFilePath: configFilePath,
	}
}

// RegistryPasswordKeyName is the keyring entry holding the password for a registry host
func RegistryPasswordKeyName(host string) string {
	return fmt.Sprintf("registry-password-%s", host)
}

func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	config, err := c.LoadRawConfig()
	if err != nil {
		return nil, err
	}

	if config.Registry.Auth == domain.AuthSchemeBasic && config.Registry.Password == nil {
		password, err := c.loadRegistryPassword(config.Registry.Host)
		if err != nil {
			return nil, err
		}
		config.Registry.Password = password
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c.config = config

	return config, nil
}

func (c *FileSystemConfigRepository) LoadRawConfig() (*domain.Config, error) {
	data, err := c.fileService.ReadFile(c.configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

func (c *FileSystemConfigRepository) loadRegistryPassword(host string) (*string, error) {
	keyName := RegistryPasswordKeyName(host)
	hasKey, err := c.keyring.HasKey(keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to query keyring for registry password: %w", err)
	}
	if !hasKey {
		return nil, nil
	}

	password, err := c.keyring.GetKey(keyName)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry password from keyring: %w", err)
	}
	slog.Debug("Loaded registry password from keyring", "host", host)

	return &password, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return c.fileService.WriteFile(c.configFilePath, data, ports.ReadWrite)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(c.configFilePath)
}

package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/distribution/reference"
)

type AuthScheme string

const (
	AuthSchemeNone  AuthScheme = "NONE"
	AuthSchemeBasic AuthScheme = "BASIC"
)

// RegistryConfig describes the registry user images are pushed to
type RegistryConfig struct {
	Host            string     `yaml:"host"`
	Protocol        string     `yaml:"protocol"`
	ImageNameFormat string     `yaml:"imageNameFormat"`
	ImageLabel      string     `yaml:"imageLabel"`
	Auth            AuthScheme `yaml:"auth"`
	User            string     `yaml:"user,omitempty"`
	Password        *string    `yaml:"password,omitempty"` // Using pointer so an empty password differs from a missing one
}

// RuntimeProfile selects the base image and build profile used to build sources
type RuntimeProfile struct {
	Image   string `yaml:"image"`
	Profile string `yaml:"profile"`
}

type ContainerNames struct {
	Puller  string `yaml:"puller"`
	Builder string `yaml:"builder"`
	Service string `yaml:"service"`
}

type TemplatePaths struct {
	Secret  string `yaml:"secret"`
	Job     string `yaml:"job"`
	Service string `yaml:"service"`
}

// Config holds the application configuration
type Config struct {
	Namespace        string                    `yaml:"namespace"`
	Registry         RegistryConfig            `yaml:"registry"`
	Containers       ContainerNames            `yaml:"containers"`
	DockerConfigPath string                    `yaml:"dockerConfigPath"`
	Runtimes         map[string]RuntimeProfile `yaml:"runtimes"`
	Templates        TemplatePaths             `yaml:"templates"`
}

func CreateDefaultConfig() Config {
	return Config{
		Namespace: "apps",
		Registry: RegistryConfig{
			Host:            "registry.local:5000",
			Protocol:        "http",
			ImageNameFormat: "user-apps/%s",
			ImageLabel:      "latest",
			Auth:            AuthSchemeNone,
		},
		Containers: ContainerNames{
			Puller:  "puller",
			Builder: "builder",
			Service: "app-container",
		},
		DockerConfigPath: "/kaniko/.docker/config.json",
		Runtimes: map[string]RuntimeProfile{
			"python3.11": {
				Image:   "python:3.11-slim",
				Profile: "python-pip",
			},
			"python3.12": {
				Image:   "python:3.12-slim",
				Profile: "python-pip",
			},
		},
		Templates: TemplatePaths{
			Secret:  "~/.appctl/templates/auth-secret.yaml",
			Job:     "~/.appctl/templates/build-job.yaml",
			Service: "~/.appctl/templates/app-service.yaml",
		},
	}
}

// RuntimeNames returns the configured runtime names in sorted order
func (c *Config) RuntimeNames() []string {
	return slices.Sorted(maps.Keys(c.Runtimes))
}

// GetRuntime looks up a runtime profile, failing with the list of supported runtimes
func (c *Config) GetRuntime(name string) (RuntimeProfile, error) {
	runtime, ok := c.Runtimes[name]
	if !ok {
		return RuntimeProfile{}, NewConfigurationError(
			"unsupported runtime '%s', supported: [%s]", name, strings.Join(c.RuntimeNames(), ", "))
	}
	return runtime, nil
}

// ImageName applies the configured image name format to an application name
func (r *RegistryConfig) ImageName(name string) string {
	return fmt.Sprintf(r.ImageNameFormat, name)
}

// FullImageName returns the image reference an application is pushed to and run from
func (r *RegistryConfig) FullImageName(name string) string {
	return fmt.Sprintf("%s/%s:%s", r.Host, r.ImageName(name), r.ImageLabel)
}

// APIURL is the base URL of the registry's distribution API
func (r *RegistryConfig) APIURL() string {
	return fmt.Sprintf("%s://%s/v2", r.Protocol, r.Host)
}

func (r *RegistryConfig) Validate() error {
	if r.Host == "" {
		return NewConfigurationError("registry host is empty")
	}
	if r.Protocol != "http" && r.Protocol != "https" {
		return NewConfigurationError("registry protocol must be 'http' or 'https', got '%s'", r.Protocol)
	}
	if strings.Count(r.ImageNameFormat, "%s") != 1 {
		return NewConfigurationError(
			"registry imageNameFormat must contain exactly one '%%s', got '%s'", r.ImageNameFormat)
	}
	if r.ImageLabel == "" {
		return NewConfigurationError("registry imageLabel is empty")
	}
	if _, err := reference.ParseNormalizedNamed(r.FullImageName("app")); err != nil {
		return NewConfigurationError("registry settings do not produce a valid image reference: %v", err)
	}

	switch r.Auth {
	case AuthSchemeNone:
	case AuthSchemeBasic:
		if strings.TrimSpace(r.User) == "" || r.Password == nil {
			return NewConfigurationError("user and password are required for BASIC docker registry authentication")
		}
	default:
		return NewConfigurationError("registry auth must be '%s' or '%s', got '%s'", AuthSchemeNone, AuthSchemeBasic, r.Auth)
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Namespace == "" {
		return NewConfigurationError("namespace is empty")
	}

	if err := c.Registry.Validate(); err != nil {
		return err
	}

	if c.Containers.Puller == "" || c.Containers.Builder == "" || c.Containers.Service == "" {
		return NewConfigurationError("containers must name the puller, builder and service containers")
	}

	if c.Registry.Auth == AuthSchemeBasic && c.DockerConfigPath == "" {
		return NewConfigurationError("dockerConfigPath is required for BASIC docker registry authentication")
	}

	if len(c.Runtimes) == 0 {
		return NewConfigurationError("no runtimes defined in configuration")
	}
	for _, name := range c.RuntimeNames() {
		runtime := c.Runtimes[name]
		if runtime.Image == "" {
			return NewConfigurationError("runtime '%s' has empty image", name)
		}
		if runtime.Profile == "" {
			return NewConfigurationError("runtime '%s' has empty profile", name)
		}
	}

	if c.Templates.Secret == "" || c.Templates.Job == "" || c.Templates.Service == "" {
		return NewConfigurationError("templates must set the secret, job and service template paths")
	}

	return nil
}

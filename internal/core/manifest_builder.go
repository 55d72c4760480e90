package core

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"appctl/internal/core/domain"
	"appctl/internal/core/mapping"
	"appctl/internal/ports"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
)

const (
	// DockerConfigKey is the credentials Secret key holding the registry docker config
	DockerConfigKey = "docker.config"
	// SecretVolumeName is the build pod volume the credentials Secret is mounted from
	SecretVolumeName = "secret-volume"

	apiKeyKey  = "API_KEY"
	jwtKey     = "JWT"
	sourcesEnv = "SOURCES"
	profileEnv = "PROFILE"
)

// ManifestBuilder materializes the credentials Secret, build Job and Knative Service of
// an application from the configured templates. It keeps no state between calls.
type ManifestBuilder struct {
	configRepository   ConfigRepository
	templateRepository TemplateRepository
	registry           ports.ContainerImageRegistry
}

func ProvideManifestBuilder(
	configRepository ConfigRepository,
	templateRepository TemplateRepository,
	registry ports.ContainerImageRegistry,
) *ManifestBuilder {
	return &ManifestBuilder{
		configRepository:   configRepository,
		templateRepository: templateRepository,
		registry:           registry,
	}
}

// BuildCredentials returns the Secret exposing the API key, JWT and registry credentials
// to the build. Blank inputs are left out rather than written as empty values.
func (b *ManifestBuilder) BuildCredentials(name string, apiKey string, jwt string) (*corev1.Secret, error) {
	templates, err := b.templateRepository.LoadTemplates()
	if err != nil {
		return nil, err
	}

	creds := make(map[string]string)
	if strings.TrimSpace(apiKey) != "" {
		creds[apiKeyKey] = apiKey
	}
	if strings.TrimSpace(jwt) != "" {
		creds[jwtKey] = jwt
	}
	if b.registry.AuthScheme() == domain.AuthSchemeBasic {
		dockerConfig, err := b.registry.DockerConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create docker config: %w", err)
		}
		creds[DockerConfigKey] = dockerConfig
	}

	secret := templates.Secret()
	root := mapping.Root(secret)

	metadata, err := mapping.Descend(root, mapping.SecretMetadata).Data()
	if err != nil {
		return nil, err
	}
	metadata.Name = domain.AuthSecretName(name)

	stringData, err := mapping.Descend(root, mapping.SecretStringData).Data()
	if err != nil {
		return nil, err
	}
	*stringData = creds

	return secret, nil
}

// BuildJob returns the Job that pulls the sources and builds them into the application image
func (b *ManifestBuilder) BuildJob(name string, sources string, runtime string) (*batchv1.Job, error) {
	config, err := b.configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	targetImage := b.registry.FullImageName(name)
	slog.Info("Target image", "image", targetImage)

	runtimeProfile, err := config.GetRuntime(runtime)
	if err != nil {
		return nil, err
	}

	templates, err := b.templateRepository.LoadTemplates()
	if err != nil {
		return nil, err
	}

	job := templates.Job()
	root := mapping.Root(job)

	metadata, err := mapping.Descend(root, mapping.JobMetadata).Data()
	if err != nil {
		return nil, err
	}
	metadata.Name = domain.BuildJobName(name)

	podSpec := mapping.Descend(mapping.Descend(mapping.Descend(root, mapping.JobSpec), mapping.JobTemplate), mapping.PodTemplateSpec)
	secretName := domain.AuthSecretName(name)

	puller := mapping.Entry(podSpec, mapping.PodInitContainers, config.Containers.Puller)
	if err := setEnv(puller, sourcesEnv, sources); err != nil {
		return nil, err
	}
	if err := setEnv(puller, profileEnv, runtimeProfile.Profile); err != nil {
		return nil, err
	}
	envFrom, err := mapping.Descend(puller, mapping.ContainerEnvFrom).Data()
	if err != nil {
		return nil, err
	}
	*envFrom = append(*envFrom, corev1.EnvFromSource{
		SecretRef: &corev1.SecretEnvSource{
			LocalObjectReference: corev1.LocalObjectReference{Name: secretName},
		},
	})

	builder := mapping.Entry(podSpec, mapping.PodContainers, config.Containers.Builder)
	args, err := mapping.Descend(builder, mapping.ContainerArgs).Data()
	if err != nil {
		return nil, err
	}
	*args = append(*args,
		fmt.Sprintf("--destination=%s", targetImage),
		fmt.Sprintf("--build-arg=BASE_IMAGE=%s", runtimeProfile.Image),
	)

	if b.registry.AuthScheme() == domain.AuthSchemeBasic {
		volume, err := mapping.Entry(podSpec, mapping.PodVolumes, SecretVolumeName).Data()
		if err != nil {
			return nil, err
		}
		volume.Secret = &corev1.SecretVolumeSource{SecretName: secretName}

		volumeMount, err := mapping.Entry(builder, mapping.ContainerVolumeMounts, config.DockerConfigPath).Data()
		if err != nil {
			return nil, err
		}
		volumeMount.Name = SecretVolumeName
		volumeMount.SubPath = DockerConfigKey
	}

	return job, nil
}

// BuildService returns the Knative Service running the application image with the
// given environment. Environment entries are applied in key order.
func (b *ManifestBuilder) BuildService(name string, env map[string]string) (*domain.KnativeService, error) {
	config, err := b.configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	templates, err := b.templateRepository.LoadTemplates()
	if err != nil {
		return nil, err
	}

	service := templates.Service()
	root := mapping.Root(service)

	metadata, err := mapping.Descend(root, mapping.ServiceMetadata).Data()
	if err != nil {
		return nil, err
	}
	metadata.Name = domain.AppName(name)

	podSpec := mapping.Descend(mapping.Descend(mapping.Descend(root, mapping.ServiceSpec), mapping.ServiceTemplate), mapping.RevisionPodSpec)
	container := mapping.Entry(podSpec, mapping.PodContainers, config.Containers.Service)

	data, err := container.Data()
	if err != nil {
		return nil, err
	}
	data.Image = b.registry.FullImageName(name)

	for _, key := range slices.Sorted(maps.Keys(env)) {
		if err := setEnv(container, key, env[key]); err != nil {
			return nil, err
		}
	}

	return service, nil
}

func setEnv(container mapping.Navigator[corev1.Container], name string, value string) error {
	env, err := mapping.Entry(container, mapping.ContainerEnv, name).Data()
	if err != nil {
		return err
	}
	env.Value = value
	return nil
}

package core

import (
	"fmt"
	"sync"

	"appctl/internal/core/domain"
	"appctl/internal/ports"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

type TemplateRepository interface {
	LoadTemplates() (*domain.Templates, error)
}

// FileSystemTemplateRepository reads the manifest templates named in the configuration.
// Template files are Go text/templates rendered with configuration values before decoding.
type FileSystemTemplateRepository struct {
	configRepository ConfigRepository
	fileService      ports.FileSystem
	templater        ports.Templater

	mu        sync.Mutex
	templates *domain.Templates
}

func ProvideFileSystemTemplateRepository(
	configRepository ConfigRepository,
	fileService ports.FileSystem,
	templater ports.Templater,
) *FileSystemTemplateRepository {
	return &FileSystemTemplateRepository{
		configRepository: configRepository,
		fileService:      fileService,
		templater:        templater,
	}
}

func (r *FileSystemTemplateRepository) LoadTemplates() (*domain.Templates, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.templates != nil {
		return r.templates, nil
	}

	config, err := r.configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	values := map[string]interface{}{
		"Namespace":        config.Namespace,
		"Registry":         config.Registry.Host,
		"DockerConfigPath": config.DockerConfigPath,
		"Containers":       config.Containers,
	}

	secret := &corev1.Secret{}
	if err := r.load(config.Templates.Secret, "secret", "Secret", values, secret); err != nil {
		return nil, err
	}
	job := &batchv1.Job{}
	if err := r.load(config.Templates.Job, "job", "Job", values, job); err != nil {
		return nil, err
	}
	service := &domain.KnativeService{}
	if err := r.load(config.Templates.Service, "service", "Service", values, service); err != nil {
		return nil, err
	}

	// Deletes only look in the configured namespace
	namespaces := []struct{ path, namespace string }{
		{config.Templates.Secret, secret.Namespace},
		{config.Templates.Job, job.Namespace},
		{config.Templates.Service, service.Namespace},
	}
	for _, template := range namespaces {
		if template.namespace != "" && template.namespace != config.Namespace {
			return nil, domain.NewConfigurationError("template %s sets namespace '%s', configured namespace is '%s'",
				template.path, template.namespace, config.Namespace)
		}
	}

	r.templates = domain.NewTemplates(secret, job, service)

	return r.templates, nil
}

// load renders a template and decodes it strictly: fields the target type does not model
// are reported instead of being dropped.
func (r *FileSystemTemplateRepository) load(
	path string,
	name string,
	kind string,
	values map[string]interface{},
	into interface{},
) error {
	data, err := r.fileService.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s template: %w", name, err)
	}

	rendered, err := r.templater.Render(string(data), name, values)
	if err != nil {
		return fmt.Errorf("failed to render %s template %s: %w", name, path, err)
	}

	var typeMeta metav1.TypeMeta
	if err := yaml.Unmarshal([]byte(rendered), &typeMeta); err != nil {
		return fmt.Errorf("failed to parse %s template %s: %w", name, path, err)
	}
	if typeMeta.Kind != "" && typeMeta.Kind != kind {
		return fmt.Errorf("template %s has kind '%s', expected '%s'", path, typeMeta.Kind, kind)
	}

	if err := yaml.UnmarshalStrict([]byte(rendered), into); err != nil {
		return fmt.Errorf("failed to parse %s template %s: %w", name, path, err)
	}

	return nil
}

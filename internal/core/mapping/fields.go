package mapping

import (
	"appctl/internal/core/domain"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Secret
var (
	SecretMetadata = NewField("metadata", func(s *corev1.Secret) *metav1.ObjectMeta {
		return &s.ObjectMeta
	})
	SecretStringData = NewField("stringData", func(s *corev1.Secret) *map[string]string {
		return &s.StringData
	})
)

// Job
var (
	JobMetadata = NewField("metadata", func(j *batchv1.Job) *metav1.ObjectMeta {
		return &j.ObjectMeta
	})
	JobSpec = NewField("spec", func(j *batchv1.Job) *batchv1.JobSpec {
		return &j.Spec
	})
	JobTemplate = NewField("template", func(s *batchv1.JobSpec) *corev1.PodTemplateSpec {
		return &s.Template
	})
	PodTemplateSpec = NewField("spec", func(t *corev1.PodTemplateSpec) *corev1.PodSpec {
		return &t.Spec
	})
)

// Knative service
var (
	ServiceMetadata = NewField("metadata", func(s *domain.KnativeService) *metav1.ObjectMeta {
		return &s.ObjectMeta
	})
	ServiceSpec = NewField("spec", func(s *domain.KnativeService) *domain.KnativeServiceSpec {
		return &s.Spec
	})
	ServiceTemplate = NewField("template", func(s *domain.KnativeServiceSpec) *domain.RevisionTemplateSpec {
		return &s.Template
	})
	RevisionPodSpec = NewField("spec", func(t *domain.RevisionTemplateSpec) *corev1.PodSpec {
		return &t.Spec.PodSpec
	})
)

// Pod spec
var (
	PodInitContainers = NewKeyedList("initContainers",
		func(p *corev1.PodSpec) *[]corev1.Container { return &p.InitContainers },
		func(c *corev1.Container) *string { return &c.Name })
	PodContainers = NewKeyedList("containers",
		func(p *corev1.PodSpec) *[]corev1.Container { return &p.Containers },
		func(c *corev1.Container) *string { return &c.Name })
	PodVolumes = NewKeyedList("volumes",
		func(p *corev1.PodSpec) *[]corev1.Volume { return &p.Volumes },
		func(v *corev1.Volume) *string { return &v.Name })
)

// Container
var (
	ContainerEnv = NewKeyedList("env",
		func(c *corev1.Container) *[]corev1.EnvVar { return &c.Env },
		func(e *corev1.EnvVar) *string { return &e.Name })
	ContainerVolumeMounts = NewKeyedList("volumeMounts",
		func(c *corev1.Container) *[]corev1.VolumeMount { return &c.VolumeMounts },
		func(m *corev1.VolumeMount) *string { return &m.MountPath })
	ContainerEnvFrom = NewField("envFrom", func(c *corev1.Container) *[]corev1.EnvFromSource {
		return &c.EnvFrom
	})
	ContainerArgs = NewField("args", func(c *corev1.Container) *[]string {
		return &c.Args
	})
)

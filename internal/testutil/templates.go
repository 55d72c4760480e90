package testutil

import (
	"appctl/internal/core/domain"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NewTestConfig returns a valid configuration using anonymous registry access
func NewTestConfig() *domain.Config {
	config := domain.CreateDefaultConfig()
	config.Registry.Host = "reg.local"
	config.Registry.Protocol = "https"
	return &config
}

// NewTestConfigWithBasicAuth returns a valid configuration using basic registry auth
func NewTestConfigWithBasicAuth() *domain.Config {
	config := NewTestConfig()
	password := "pass"
	config.Registry.Auth = domain.AuthSchemeBasic
	config.Registry.User = "user"
	config.Registry.Password = &password
	return config
}

// NewTestTemplates returns templates shaped like the samples written by 'appctl init'
func NewTestTemplates() *domain.Templates {
	secret := &corev1.Secret{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: metav1.ObjectMeta{
			Namespace: "apps",
			Labels:    map[string]string{"app.kubernetes.io/managed-by": "appctl"},
		},
		Type: corev1.SecretTypeOpaque,
	}

	job := &batchv1.Job{
		TypeMeta: metav1.TypeMeta{APIVersion: "batch/v1", Kind: "Job"},
		ObjectMeta: metav1.ObjectMeta{
			Namespace: "apps",
			Labels:    map[string]string{"app.kubernetes.io/managed-by": "appctl"},
		},
		Spec: batchv1.JobSpec{
			Template: corev1.PodTemplateSpec{
				Spec: corev1.PodSpec{
					RestartPolicy: corev1.RestartPolicyNever,
					InitContainers: []corev1.Container{
						{
							Name:  "puller",
							Image: "registry.local/puller:latest",
							Env: []corev1.EnvVar{
								{Name: "TARGET_DIR", Value: "/workspace"},
							},
						},
					},
					Containers: []corev1.Container{
						{
							Name:  "builder",
							Image: "gcr.io/kaniko-project/executor:latest",
							Args:  []string{"--context=dir:///workspace"},
						},
					},
				},
			},
		},
	}

	service := &domain.KnativeService{
		TypeMeta: metav1.TypeMeta{APIVersion: "serving.knative.dev/v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Namespace: "apps",
		},
		Spec: domain.KnativeServiceSpec{
			Template: domain.RevisionTemplateSpec{
				Spec: domain.RevisionSpec{
					PodSpec: corev1.PodSpec{
						Containers: []corev1.Container{
							{
								Name: "app-container",
								Env: []corev1.EnvVar{
									{Name: "LOG_LEVEL", Value: "info"},
								},
							},
						},
					},
				},
			},
		},
	}

	return domain.NewTemplates(secret, job, service)
}

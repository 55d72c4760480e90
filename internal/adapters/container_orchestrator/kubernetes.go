package container_orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"appctl/internal/core"
	"appctl/internal/core/domain"
	"appctl/internal/ports"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/utils/ptr"
)

// Compile-time interface compliance check
var _ ports.ContainerOrchestrator = (*Kubernetes)(nil)

// Kubernetes applies application manifests to a cluster. Secrets and Jobs go through the
// typed clientset, Knative Services through the dynamic client.
type Kubernetes struct {
	clientSet kubernetes.Interface
	dynamic   dynamic.Interface
	namespace string

	jobPollInterval  time.Duration
	jobDeleteTimeout time.Duration
}

func ProvideKubernetes(configRepository core.ConfigRepository) (*Kubernetes, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}

	kubeConfigPath := os.Getenv("KUBECONFIG")
	if kubeConfigPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %v", err)
		}
		kubeConfigPath = filepath.Join(home, ".kube", "config")
	}

	kubeConfig, err := clientcmd.BuildConfigFromFlags("", kubeConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes config: %v", err)
	}

	clientSet, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %v", err)
	}

	dynamicClient, err := dynamic.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes dynamic client: %v", err)
	}

	return NewKubernetes(clientSet, dynamicClient, config.Namespace), nil
}

// NewKubernetes uses namespace for manifests that do not set one and for deletes
func NewKubernetes(clientSet kubernetes.Interface, dynamicClient dynamic.Interface, namespace string) *Kubernetes {
	return &Kubernetes{
		clientSet:        clientSet,
		dynamic:          dynamicClient,
		namespace:        namespace,
		jobPollInterval:  time.Second,
		jobDeleteTimeout: 2 * time.Minute,
	}
}

// ApplySecret creates the secret, or replaces the data of an existing one
func (k *Kubernetes) ApplySecret(ctx context.Context, secret *corev1.Secret) error {
	secret = secret.DeepCopy()
	secret.Namespace = k.namespaceOf(secret.Namespace)
	namespace := secret.Namespace
	secrets := k.clientSet.CoreV1().Secrets(namespace)

	existing, err := secrets.Get(ctx, secret.Name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		if _, err := secrets.Create(ctx, secret, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create secret %s: %w", secret.Name, err)
		}
		slog.Info("Created secret", "name", secret.Name, "namespace", namespace)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get secret %s: %w", secret.Name, err)
	}

	secret.ResourceVersion = existing.ResourceVersion
	if _, err := secrets.Update(ctx, secret, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update secret %s: %w", secret.Name, err)
	}
	slog.Info("Updated secret", "name", secret.Name, "namespace", namespace)

	return nil
}

// ApplyJob replaces any previous job of the same name, since a job's pod template cannot
// be changed once created. The new job is created once the old one is gone.
func (k *Kubernetes) ApplyJob(ctx context.Context, job *batchv1.Job) error {
	job = job.DeepCopy()
	job.Namespace = k.namespaceOf(job.Namespace)
	namespace := job.Namespace

	if err := k.deleteJob(ctx, namespace, job.Name); err != nil {
		return err
	}
	if err := k.waitForJobDeletion(ctx, namespace, job.Name); err != nil {
		return err
	}

	if _, err := k.clientSet.BatchV1().Jobs(namespace).Create(ctx, job, metav1.CreateOptions{}); err != nil {
		return fmt.Errorf("failed to create job %s: %w", job.Name, err)
	}
	slog.Info("Created job", "name", job.Name, "namespace", namespace)

	return nil
}

// ApplyService creates the Knative service, or updates the existing one in place
func (k *Kubernetes) ApplyService(ctx context.Context, service *domain.KnativeService) error {
	service = service.DeepCopy()
	service.Namespace = k.namespaceOf(service.Namespace)
	namespace := service.Namespace

	object, err := toUnstructured(service)
	if err != nil {
		return err
	}
	services := k.dynamic.Resource(domain.KnativeServiceResource).Namespace(namespace)

	existing, err := services.Get(ctx, service.Name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		if _, err := services.Create(ctx, object, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create service %s: %w", service.Name, err)
		}
		slog.Info("Created service", "name", service.Name, "namespace", namespace)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get service %s: %w", service.Name, err)
	}

	object.SetResourceVersion(existing.GetResourceVersion())
	if _, err := services.Update(ctx, object, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update service %s: %w", service.Name, err)
	}
	slog.Info("Updated service", "name", service.Name, "namespace", namespace)

	return nil
}

func (k *Kubernetes) DeleteSecret(ctx context.Context, name string) error {
	err := k.clientSet.CoreV1().Secrets(k.namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete secret %s: %w", name, err)
	}
	return nil
}

func (k *Kubernetes) DeleteJob(ctx context.Context, name string) error {
	return k.deleteJob(ctx, k.namespace, name)
}

func (k *Kubernetes) DeleteService(ctx context.Context, name string) error {
	err := k.dynamic.Resource(domain.KnativeServiceResource).Namespace(k.namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete service %s: %w", name, err)
	}
	return nil
}

func (k *Kubernetes) deleteJob(ctx context.Context, namespace string, name string) error {
	// Background propagation so the job's pods are removed along with it
	err := k.clientSet.BatchV1().Jobs(namespace).Delete(ctx, name, metav1.DeleteOptions{
		PropagationPolicy: ptr.To(metav1.DeletePropagationBackground),
	})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete job %s: %w", name, err)
	}
	return nil
}

func (k *Kubernetes) waitForJobDeletion(ctx context.Context, namespace string, name string) error {
	jobs := k.clientSet.BatchV1().Jobs(namespace)
	err := wait.PollUntilContextTimeout(ctx, k.jobPollInterval, k.jobDeleteTimeout, true, func(ctx context.Context) (bool, error) {
		_, err := jobs.Get(ctx, name, metav1.GetOptions{})
		if apierrors.IsNotFound(err) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		slog.Debug("Waiting for job deletion", "name", name, "namespace", namespace)
		return false, nil
	})
	if err != nil {
		return fmt.Errorf("failed waiting for job %s to be deleted: %w", name, err)
	}
	return nil
}

func (k *Kubernetes) namespaceOf(namespace string) string {
	if namespace == "" {
		return k.namespace
	}
	return namespace
}

func toUnstructured(service *domain.KnativeService) (*unstructured.Unstructured, error) {
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(service)
	if err != nil {
		return nil, fmt.Errorf("failed to convert service %s: %w", service.Name, err)
	}
	object := &unstructured.Unstructured{Object: content}
	object.SetGroupVersionKind(domain.KnativeServiceResource.GroupVersion().WithKind("Service"))
	return object, nil
}

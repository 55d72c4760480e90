package ports

import (
	"context"

	"appctl/internal/core/domain"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
)

// ContainerOrchestrator submits materialized manifests to the cluster.
// Delete operations succeed when the resource does not exist.
type ContainerOrchestrator interface {
	ApplySecret(ctx context.Context, secret *corev1.Secret) error
	ApplyJob(ctx context.Context, job *batchv1.Job) error
	ApplyService(ctx context.Context, service *domain.KnativeService) error
	DeleteSecret(ctx context.Context, name string) error
	DeleteJob(ctx context.Context, name string) error
	DeleteService(ctx context.Context, name string) error
}

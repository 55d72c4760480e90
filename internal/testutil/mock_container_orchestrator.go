package testutil

import (
	"context"

	"appctl/internal/core/domain"
	"appctl/internal/ports"

	"github.com/stretchr/testify/mock"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
)

// Compile-time interface compliance check
var _ ports.ContainerOrchestrator = (*MockContainerOrchestrator)(nil)

type MockContainerOrchestrator struct {
	mock.Mock
}

func (m *MockContainerOrchestrator) ApplySecret(ctx context.Context, secret *corev1.Secret) error {
	args := m.Called(ctx, secret)
	return args.Error(0)
}

func (m *MockContainerOrchestrator) ApplyJob(ctx context.Context, job *batchv1.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockContainerOrchestrator) ApplyService(ctx context.Context, service *domain.KnativeService) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockContainerOrchestrator) DeleteSecret(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockContainerOrchestrator) DeleteJob(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockContainerOrchestrator) DeleteService(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

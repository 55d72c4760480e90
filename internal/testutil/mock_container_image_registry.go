package testutil

import (
	"context"

	"appctl/internal/core/domain"
	"appctl/internal/ports"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/mock"
)

// Compile-time interface compliance check
var _ ports.ContainerImageRegistry = (*MockContainerImageRegistry)(nil)

type MockContainerImageRegistry struct {
	mock.Mock
}

func (m *MockContainerImageRegistry) GetDigest(ctx context.Context, name string) (digest.Digest, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(digest.Digest), args.Error(1)
}

func (m *MockContainerImageRegistry) DeleteManifest(ctx context.Context, name string, dgst digest.Digest) (bool, error) {
	args := m.Called(ctx, name, dgst)
	return args.Bool(0), args.Error(1)
}

func (m *MockContainerImageRegistry) FullImageName(name string) string {
	args := m.Called(name)
	if fn, ok := args.Get(0).(func(string) string); ok {
		return fn(name)
	}
	return args.String(0)
}

func (m *MockContainerImageRegistry) DockerConfig() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockContainerImageRegistry) AuthScheme() domain.AuthScheme {
	args := m.Called()
	return args.Get(0).(domain.AuthScheme)
}

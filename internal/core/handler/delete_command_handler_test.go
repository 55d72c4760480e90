package handler

import (
	"context"
	"errors"
	"testing"

	"appctl/internal/testutil"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDeleteMocks() (*testutil.MockContainerOrchestrator, *testutil.MockContainerImageRegistry) {
	orchestrator := new(testutil.MockContainerOrchestrator)
	orchestrator.On("DeleteService", mock.Anything, "app-myapp").Return(nil)
	orchestrator.On("DeleteJob", mock.Anything, "build-myapp").Return(nil)
	orchestrator.On("DeleteSecret", mock.Anything, "auth-myapp").Return(nil)

	registry := new(testutil.MockContainerImageRegistry)
	registry.On("FullImageName", "myapp").Return("reg.local/user-apps/myapp:latest")
	return orchestrator, registry
}

func TestDeleteCommandHandler_Handle_RemovesResourcesAndImage(t *testing.T) {
	orchestrator, registry := newDeleteMocks()
	registry.On("GetDigest", mock.Anything, "myapp").Return(digest.Digest("sha256:aaa"), nil)
	registry.On("DeleteManifest", mock.Anything, "myapp", digest.Digest("sha256:aaa")).Return(true, nil)

	sut := ProvideDeleteCommandHandler(orchestrator, registry)

	err := sut.Handle(context.Background(), "myapp", false)

	assert.NoError(t, err)
	orchestrator.AssertExpectations(t)
	registry.AssertExpectations(t)
}

func TestDeleteCommandHandler_Handle_KeepImage(t *testing.T) {
	orchestrator, registry := newDeleteMocks()

	sut := ProvideDeleteCommandHandler(orchestrator, registry)

	err := sut.Handle(context.Background(), "myapp", true)

	assert.NoError(t, err)
	orchestrator.AssertExpectations(t)
	registry.AssertNotCalled(t, "GetDigest", mock.Anything, mock.Anything)
}

func TestDeleteCommandHandler_Handle_MissingImageIsNotAnError(t *testing.T) {
	orchestrator, registry := newDeleteMocks()
	registry.On("GetDigest", mock.Anything, "myapp").Return(digest.Digest(""), nil)

	sut := ProvideDeleteCommandHandler(orchestrator, registry)

	err := sut.Handle(context.Background(), "myapp", false)

	assert.NoError(t, err)
	registry.AssertNotCalled(t, "DeleteManifest", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteCommandHandler_Handle_StopsOnOrchestratorError(t *testing.T) {
	orchestrator := new(testutil.MockContainerOrchestrator)
	orchestrator.On("DeleteService", mock.Anything, "app-myapp").Return(errors.New("unreachable"))
	registry := new(testutil.MockContainerImageRegistry)

	sut := ProvideDeleteCommandHandler(orchestrator, registry)

	err := sut.Handle(context.Background(), "myapp", false)

	assert.EqualError(t, err, "unreachable")
	orchestrator.AssertNotCalled(t, "DeleteJob", mock.Anything, mock.Anything)
}

func TestDeleteCommandHandler_Handle_RegistryError(t *testing.T) {
	orchestrator, registry := newDeleteMocks()
	registry.On("GetDigest", mock.Anything, "myapp").Return(digest.Digest(""), errors.New("timeout"))

	sut := ProvideDeleteCommandHandler(orchestrator, registry)

	err := sut.Handle(context.Background(), "myapp", false)

	assert.EqualError(t, err, "failed to delete image: timeout")
}

package handler

import (
	"context"
	"errors"
	"testing"

	"appctl/internal/core/domain"
	"appctl/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
)

func TestBuildCommandHandler_Handle_AppliesSecretThenJob(t *testing.T) {
	builder, configRepository, _ := newTestManifestBuilder(testutil.NewTestConfig())
	orchestrator := new(testutil.MockContainerOrchestrator)
	applySecret := orchestrator.On("ApplySecret", mock.Anything, mock.MatchedBy(func(secret *corev1.Secret) bool {
		return secret.Name == "auth-myapp" && secret.StringData["API_KEY"] == "key"
	})).Return(nil).Once()
	applyJob := orchestrator.On("ApplyJob", mock.Anything, mock.MatchedBy(func(job *batchv1.Job) bool {
		return job.Name == "build-myapp"
	})).Return(nil).Once()
	mock.InOrder(applySecret, applyJob)

	sut := ProvideBuildCommandHandler(configRepository, builder, orchestrator)

	err := sut.Handle(context.Background(), BuildRequest{
		Name:    "myapp",
		Sources: "s3://bucket/src.zip",
		Runtime: "python3.11",
		ApiKey:  "key",
	})

	assert.NoError(t, err)
	orchestrator.AssertExpectations(t)
}

func TestBuildCommandHandler_Handle_UnknownRuntimeSuggestsClosest(t *testing.T) {
	builder, configRepository, _ := newTestManifestBuilder(testutil.NewTestConfig())
	orchestrator := new(testutil.MockContainerOrchestrator)

	sut := ProvideBuildCommandHandler(configRepository, builder, orchestrator)

	err := sut.Handle(context.Background(), BuildRequest{Name: "myapp", Sources: "src", Runtime: "python3.13"})

	require.Error(t, err)
	var configErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "did you mean 'python3.11'?")
	orchestrator.AssertNotCalled(t, "ApplySecret", mock.Anything, mock.Anything)
	orchestrator.AssertNotCalled(t, "ApplyJob", mock.Anything, mock.Anything)
}

func TestBuildCommandHandler_Handle_StopsWhenSecretFails(t *testing.T) {
	builder, configRepository, _ := newTestManifestBuilder(testutil.NewTestConfig())
	orchestrator := new(testutil.MockContainerOrchestrator)
	orchestrator.On("ApplySecret", mock.Anything, mock.Anything).Return(errors.New("forbidden"))

	sut := ProvideBuildCommandHandler(configRepository, builder, orchestrator)

	err := sut.Handle(context.Background(), BuildRequest{Name: "myapp", Sources: "src", Runtime: "python3.11"})

	assert.EqualError(t, err, "forbidden")
	orchestrator.AssertNotCalled(t, "ApplyJob", mock.Anything, mock.Anything)
}

func TestBuildCommandHandler_Handle_BasicAuthMountsCredentials(t *testing.T) {
	builder, configRepository, _ := newTestManifestBuilder(testutil.NewTestConfigWithBasicAuth())
	orchestrator := new(testutil.MockContainerOrchestrator)
	orchestrator.On("ApplySecret", mock.Anything, mock.MatchedBy(func(secret *corev1.Secret) bool {
		_, ok := secret.StringData["docker.config"]
		return ok
	})).Return(nil)
	orchestrator.On("ApplyJob", mock.Anything, mock.MatchedBy(func(job *batchv1.Job) bool {
		return len(job.Spec.Template.Spec.Volumes) == 1
	})).Return(nil)

	sut := ProvideBuildCommandHandler(configRepository, builder, orchestrator)

	err := sut.Handle(context.Background(), BuildRequest{Name: "myapp", Sources: "src", Runtime: "python3.12"})

	assert.NoError(t, err)
	orchestrator.AssertExpectations(t)
}

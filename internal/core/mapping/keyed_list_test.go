package mapping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
)

func TestEntry_ReturnsExistingElement(t *testing.T) {
	container := &corev1.Container{
		Env: []corev1.EnvVar{
			{Name: "FIRST", Value: "1"},
			{Name: "SECOND", Value: "2"},
		},
	}

	env, err := Entry(Root(container), ContainerEnv, "SECOND").Data()
	require.NoError(t, err)
	env.Value = "changed"

	assert.Len(t, container.Env, 2)
	assert.Equal(t, "changed", container.Env[1].Value)
}

func TestEntry_AppendsMissingElementWithKey(t *testing.T) {
	container := &corev1.Container{
		Env: []corev1.EnvVar{{Name: "FIRST", Value: "1"}},
	}

	env, err := Entry(Root(container), ContainerEnv, "SECOND").Data()
	require.NoError(t, err)
	env.Value = "2"

	assert.Equal(t, []corev1.EnvVar{
		{Name: "FIRST", Value: "1"},
		{Name: "SECOND", Value: "2"},
	}, container.Env)
}

func TestEntry_AppendsToEmptyList(t *testing.T) {
	podSpec := &corev1.PodSpec{}

	volume, err := Entry(Root(podSpec), PodVolumes, "secret-volume").Data()
	require.NoError(t, err)

	assert.Equal(t, "secret-volume", volume.Name)
	assert.Len(t, podSpec.Volumes, 1)
}

func TestEntry_SameKeyResolvesToSingleElement(t *testing.T) {
	container := &corev1.Container{}
	root := Root(container)

	first, err := Entry(root, ContainerEnv, "SOURCES").Data()
	require.NoError(t, err)
	second, err := Entry(root, ContainerEnv, "SOURCES").Data()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Len(t, container.Env, 1)
}

func TestEntry_NavigatorStaysValidAfterListGrows(t *testing.T) {
	container := &corev1.Container{}
	root := Root(container)
	sources := Entry(root, ContainerEnv, "SOURCES")

	_, err := sources.Data()
	require.NoError(t, err)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := Entry(root, ContainerEnv, name).Data()
		require.NoError(t, err)
	}

	env, err := sources.Data()
	require.NoError(t, err)
	env.Value = "s3://bucket/app.zip"

	again, err := Entry(root, ContainerEnv, "SOURCES").Data()
	require.NoError(t, err)
	assert.Same(t, env, again)
	assert.Len(t, container.Env, 6)
	assert.Equal(t, "s3://bucket/app.zip", container.Env[0].Value)
}

func TestEntry_PreservesAppendOrder(t *testing.T) {
	podSpec := &corev1.PodSpec{
		Containers: []corev1.Container{{Name: "builder"}},
	}
	root := Root(podSpec)

	for _, name := range []string{"sidecar", "builder", "proxy"} {
		_, err := Entry(root, PodContainers, name).Data()
		require.NoError(t, err)
	}

	var names []string
	for _, c := range podSpec.Containers {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"builder", "sidecar", "proxy"}, names)
}

func TestEntry_KeysByMountPath(t *testing.T) {
	container := &corev1.Container{
		VolumeMounts: []corev1.VolumeMount{{Name: "cache", MountPath: "/cache"}},
	}

	mount, err := Entry(Root(container), ContainerVolumeMounts, "/kaniko/.docker/config.json").Data()
	require.NoError(t, err)
	mount.Name = "secret-volume"

	assert.Len(t, container.VolumeMounts, 2)
	assert.Equal(t, "/kaniko/.docker/config.json", container.VolumeMounts[1].MountPath)
}

func TestEntry_FailsWhenParentFails(t *testing.T) {
	_, err := Entry(Root[corev1.Container](nil), ContainerEnv, "SOURCES").Data()

	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestEntry_ComposesWithDescend(t *testing.T) {
	podSpec := &corev1.PodSpec{
		InitContainers: []corev1.Container{{Name: "puller"}},
	}

	puller := Entry(Root(podSpec), PodInitContainers, "puller")
	args, err := Descend(puller, ContainerArgs).Data()
	require.NoError(t, err)
	*args = append(*args, "--verbose")
	env, err := Entry(puller, ContainerEnv, "PROFILE").Data()
	require.NoError(t, err)
	env.Value = "python-pip"

	assert.Len(t, podSpec.InitContainers, 1)
	assert.Equal(t, []string{"--verbose"}, podSpec.InitContainers[0].Args)
	assert.Equal(t, "python-pip", podSpec.InitContainers[0].Env[0].Value)
}

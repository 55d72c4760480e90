package ports

import (
	"context"

	"appctl/internal/core/domain"

	"github.com/opencontainers/go-digest"
)

// ContainerImageRegistry resolves and removes application images in the configured registry
type ContainerImageRegistry interface {
	// GetDigest returns the manifest digest of the application's image, or an empty
	// digest when the registry does not know the image.
	GetDigest(ctx context.Context, name string) (digest.Digest, error)
	// DeleteManifest deletes the manifest with the given digest. It returns false when
	// the registry reports that there was nothing to delete.
	DeleteManifest(ctx context.Context, name string, dgst digest.Digest) (bool, error)
	FullImageName(name string) string
	// DockerConfig returns the docker config.json content used to push to the registry
	DockerConfig() (string, error)
	AuthScheme() domain.AuthScheme
}

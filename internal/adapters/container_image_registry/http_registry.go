package container_image_registry

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"appctl/internal/core"
	"appctl/internal/core/domain"
	"appctl/internal/ports"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const (
	// MediaTypeDockerManifest is the Docker image manifest, schema 2
	MediaTypeDockerManifest = "application/vnd.docker.distribution.manifest.v2+json"

	contentDigestHeader = "Docker-Content-Digest"
)

// Compile-time interface compliance check
var _ ports.ContainerImageRegistry = (*HTTPRegistry)(nil)

// HTTPRegistry talks to a registry through the distribution HTTP API. Each method
// performs its requests synchronously; timeouts and cancellation come from ctx and the
// underlying http.Client.
type HTTPRegistry struct {
	config domain.RegistryConfig
	client *http.Client
}

func ProvideHTTPRegistry(configRepository core.ConfigRepository) (*HTTPRegistry, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewHTTPRegistry(config.Registry, &http.Client{})
}

// NewHTTPRegistry fails with a *domain.ConfigurationError when the settings are incomplete,
// so that no request is ever sent with missing credentials.
func NewHTTPRegistry(config domain.RegistryConfig, client *http.Client) (*HTTPRegistry, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{}
	}
	return &HTTPRegistry{
		config: config,
		client: client,
	}, nil
}

// GetDigest resolves the digest of the configured label of an application image. The OCI
// manifest is asked for first and the Docker v2 manifest only when the registry has no OCI
// one. An empty digest means neither exists.
func (r *HTTPRegistry) GetDigest(ctx context.Context, name string) (digest.Digest, error) {
	dgst, found, err := r.headManifest(ctx, ocispec.MediaTypeImageManifest, name)
	if err != nil || found {
		return dgst, err
	}

	dgst, _, err = r.headManifest(ctx, MediaTypeDockerManifest, name)
	return dgst, err
}

func (r *HTTPRegistry) headManifest(ctx context.Context, mediaType string, name string) (digest.Digest, bool, error) {
	imageName := r.config.ImageName(name)
	slog.Info("Retrieving digest", "image", imageName, "mediaType", mediaType)

	req, err := r.newRequest(ctx, http.MethodHead, r.manifestURL(imageName, r.config.ImageLabel))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Accept", mediaType)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", false, nil
	}
	if !isSuccess(resp.StatusCode) {
		return "", false, newUpstreamError(resp)
	}

	value := strings.TrimSpace(resp.Header.Get(contentDigestHeader))
	if value == "" {
		return "", false, &domain.ProtocolViolationError{MediaType: mediaType}
	}
	slog.Info("Retrieved digest", "image", imageName, "label", r.config.ImageLabel, "mediaType", mediaType, "digest", value)

	return digest.Digest(value), true, nil
}

// DeleteManifest removes the manifest with the given digest. It reports false when the
// registry does not know the manifest.
func (r *HTTPRegistry) DeleteManifest(ctx context.Context, name string, dgst digest.Digest) (bool, error) {
	imageName := r.config.ImageName(name)
	slog.Info("Deleting manifest", "image", imageName, "digest", dgst)

	req, err := r.newRequest(ctx, http.MethodDelete, r.manifestURL(imageName, dgst.String()))
	if err != nil {
		return false, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if !isSuccess(resp.StatusCode) {
		return false, newUpstreamError(resp)
	}
	slog.Info("Deleted manifest", "image", imageName, "digest", dgst)

	return true, nil
}

func (r *HTTPRegistry) FullImageName(name string) string {
	return r.config.FullImageName(name)
}

type dockerConfig struct {
	Auths map[string]dockerAuth `json:"auths"`
}

type dockerAuth struct {
	Auth string `json:"auth"`
}

// DockerConfig renders the docker config.json granting push access to the registry
func (r *HTTPRegistry) DockerConfig() (string, error) {
	if r.config.Auth != domain.AuthSchemeBasic {
		return "{}", nil
	}

	config := dockerConfig{
		Auths: map[string]dockerAuth{
			r.config.APIURL(): {Auth: r.basicCredentials()},
		},
	}
	data, err := json.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("failed to marshal docker config: %w", err)
	}

	return string(data), nil
}

func (r *HTTPRegistry) AuthScheme() domain.AuthScheme {
	return r.config.Auth
}

func (r *HTTPRegistry) manifestURL(imageName string, reference string) string {
	return fmt.Sprintf("%s/%s/manifests/%s", r.config.APIURL(), imageName, reference)
}

func (r *HTTPRegistry) newRequest(ctx context.Context, method string, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry request: %w", err)
	}
	if r.config.Auth == domain.AuthSchemeBasic {
		req.Header.Set("Authorization", "Basic "+r.basicCredentials())
	}
	return req, nil
}

func (r *HTTPRegistry) basicCredentials() string {
	return base64.StdEncoding.EncodeToString([]byte(r.config.User + ":" + *r.config.Password))
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

func newUpstreamError(resp *http.Response) *domain.UpstreamError {
	message := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &domain.UpstreamError{StatusCode: resp.StatusCode, Message: message}
}

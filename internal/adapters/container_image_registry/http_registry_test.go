package container_image_registry

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"appctl/internal/core/domain"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method        string
	Path          string
	Accept        string
	Authorization string
}

type fakeRegistry struct {
	mu       sync.Mutex
	requests []recordedRequest
	handler  func(w http.ResponseWriter, r *http.Request)
}

func newFakeRegistry(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*fakeRegistry, *httptest.Server) {
	t.Helper()
	fake := &fakeRegistry{handler: handler}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.mu.Lock()
		fake.requests = append(fake.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Accept:        r.Header.Get("Accept"),
			Authorization: r.Header.Get("Authorization"),
		})
		fake.mu.Unlock()
		fake.handler(w, r)
	}))
	t.Cleanup(server.Close)
	return fake, server
}

func (f *fakeRegistry) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func registryConfig(t *testing.T, server *httptest.Server) domain.RegistryConfig {
	t.Helper()
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return domain.RegistryConfig{
		Host:            u.Host,
		Protocol:        "http",
		ImageNameFormat: "user-apps/%s",
		ImageLabel:      "latest",
		Auth:            domain.AuthSchemeNone,
	}
}

func basicConfig(t *testing.T, server *httptest.Server) domain.RegistryConfig {
	t.Helper()
	config := registryConfig(t, server)
	password := "pass"
	config.Auth = domain.AuthSchemeBasic
	config.User = "user"
	config.Password = &password
	return config
}

func newTestRegistry(t *testing.T, config domain.RegistryConfig, server *httptest.Server) *HTTPRegistry {
	t.Helper()
	registry, err := NewHTTPRegistry(config, server.Client())
	require.NoError(t, err)
	return registry
}

func TestGetDigest_OciManifest(t *testing.T) {
	fake, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Docker-Content-Digest", "sha256:oci")
		w.WriteHeader(http.StatusOK)
	})
	registry := newTestRegistry(t, registryConfig(t, server), server)

	dgst, err := registry.GetDigest(context.Background(), "myapp")

	require.NoError(t, err)
	assert.Equal(t, digest.Digest("sha256:oci"), dgst)
	requests := fake.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, http.MethodHead, requests[0].Method)
	assert.Equal(t, "/v2/user-apps/myapp/manifests/latest", requests[0].Path)
	assert.Equal(t, "application/vnd.oci.image.manifest.v1+json", requests[0].Accept)
}

func TestGetDigest_FallsBackToDockerManifest(t *testing.T) {
	fake, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") == MediaTypeDockerManifest {
			w.Header().Set("Docker-Content-Digest", "sha256:abc")
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	registry := newTestRegistry(t, registryConfig(t, server), server)

	dgst, err := registry.GetDigest(context.Background(), "myapp")

	require.NoError(t, err)
	assert.Equal(t, digest.Digest("sha256:abc"), dgst)
	requests := fake.Requests()
	require.Len(t, requests, 2)
	assert.Equal(t, "application/vnd.oci.image.manifest.v1+json", requests[0].Accept)
	assert.Equal(t, MediaTypeDockerManifest, requests[1].Accept)
}

func TestGetDigest_NotFound(t *testing.T) {
	fake, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	registry := newTestRegistry(t, registryConfig(t, server), server)

	dgst, err := registry.GetDigest(context.Background(), "myapp")

	require.NoError(t, err)
	assert.Empty(t, dgst)
	assert.Len(t, fake.Requests(), 2)
}

func TestGetDigest_MissingDigestHeader(t *testing.T) {
	fake, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	registry := newTestRegistry(t, registryConfig(t, server), server)

	_, err := registry.GetDigest(context.Background(), "myapp")

	var protocolErr *domain.ProtocolViolationError
	require.ErrorAs(t, err, &protocolErr)
	assert.Equal(t, "missing digest in manifest application/vnd.oci.image.manifest.v1+json response", protocolErr.Error())
	assert.Len(t, fake.Requests(), 1)
}

func TestGetDigest_UpstreamError(t *testing.T) {
	fake, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	registry := newTestRegistry(t, registryConfig(t, server), server)

	_, err := registry.GetDigest(context.Background(), "myapp")

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
	assert.Equal(t, "Unauthorized", upstreamErr.Message)
	assert.Len(t, fake.Requests(), 1)
}

func TestGetDigest_TransportError(t *testing.T) {
	_, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {})
	registry := newTestRegistry(t, registryConfig(t, server), server)
	server.Close()

	_, err := registry.GetDigest(context.Background(), "myapp")

	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
}

func TestGetDigest_CanceledContext(t *testing.T) {
	_, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	registry := newTestRegistry(t, registryConfig(t, server), server)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.GetDigest(ctx, "myapp")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeleteManifest(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected bool
		errCode  int
	}{
		{name: "accepted", status: http.StatusAccepted, expected: true},
		{name: "not found", status: http.StatusNotFound, expected: false},
		{name: "server error", status: http.StatusInternalServerError, errCode: http.StatusInternalServerError},
		{name: "unsupported", status: http.StatusMethodNotAllowed, errCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			registry := newTestRegistry(t, registryConfig(t, server), server)

			deleted, err := registry.DeleteManifest(context.Background(), "myapp", "sha256:abc")

			if tt.errCode != 0 {
				var upstreamErr *domain.UpstreamError
				require.ErrorAs(t, err, &upstreamErr)
				assert.Equal(t, tt.errCode, upstreamErr.StatusCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, deleted)

			requests := fake.Requests()
			require.Len(t, requests, 1)
			assert.Equal(t, http.MethodDelete, requests[0].Method)
			assert.Equal(t, "/v2/user-apps/myapp/manifests/sha256:abc", requests[0].Path)
		})
	}
}

func TestAuthorizationHeader(t *testing.T) {
	fake, server := newFakeRegistry(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	anonymous := newTestRegistry(t, registryConfig(t, server), server)
	_, err := anonymous.DeleteManifest(context.Background(), "myapp", "sha256:abc")
	require.NoError(t, err)

	basic := newTestRegistry(t, basicConfig(t, server), server)
	_, err = basic.GetDigest(context.Background(), "myapp")
	require.NoError(t, err)

	requests := fake.Requests()
	require.Len(t, requests, 3)
	assert.Empty(t, requests[0].Authorization)
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass"))
	assert.Equal(t, expected, requests[1].Authorization)
	assert.Equal(t, expected, requests[2].Authorization)
}

func TestNewHTTPRegistry_BasicWithoutCredentials(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		password *string
	}{
		{name: "missing password", user: "user"},
		{name: "blank user", user: "  ", password: new(string)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := domain.RegistryConfig{
				Host:            "reg.local",
				Protocol:        "https",
				ImageNameFormat: "user-apps/%s",
				ImageLabel:      "latest",
				Auth:            domain.AuthSchemeBasic,
				User:            tt.user,
				Password:        tt.password,
			}

			registry, err := NewHTTPRegistry(config, nil)

			assert.Nil(t, registry)
			var configErr *domain.ConfigurationError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, "user and password are required for BASIC docker registry authentication", configErr.Message)
		})
	}
}

func TestNewHTTPRegistry_BasicWithEmptyPassword(t *testing.T) {
	config := domain.RegistryConfig{
		Host:            "reg.local",
		Protocol:        "https",
		ImageNameFormat: "user-apps/%s",
		ImageLabel:      "latest",
		Auth:            domain.AuthSchemeBasic,
		User:            "user",
		Password:        new(string),
	}

	registry, err := NewHTTPRegistry(config, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.AuthSchemeBasic, registry.AuthScheme())
}

func TestFullImageName(t *testing.T) {
	config := domain.RegistryConfig{
		Host:            "reg.local",
		Protocol:        "https",
		ImageNameFormat: "user-apps/%s",
		ImageLabel:      "latest",
		Auth:            domain.AuthSchemeNone,
	}
	registry, err := NewHTTPRegistry(config, nil)
	require.NoError(t, err)

	assert.Equal(t, "reg.local/user-apps/myapp:latest", registry.FullImageName("myapp"))
}

func TestDockerConfig(t *testing.T) {
	password := "pass"
	config := domain.RegistryConfig{
		Host:            "reg.local",
		Protocol:        "https",
		ImageNameFormat: "user-apps/%s",
		ImageLabel:      "latest",
		Auth:            domain.AuthSchemeNone,
	}

	anonymous, err := NewHTTPRegistry(config, nil)
	require.NoError(t, err)
	blob, err := anonymous.DockerConfig()
	require.NoError(t, err)
	assert.Equal(t, "{}", blob)

	config.Auth = domain.AuthSchemeBasic
	config.User = "user"
	config.Password = &password
	basic, err := NewHTTPRegistry(config, nil)
	require.NoError(t, err)
	blob, err = basic.DockerConfig()
	require.NoError(t, err)
	assert.JSONEq(t, `{"auths":{"https://reg.local/v2":{"auth":"dXNlcjpwYXNz"}}}`, blob)
}

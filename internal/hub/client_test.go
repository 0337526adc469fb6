package hub

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client pointed at the given stub hub.
func newTestClient(t *testing.T, server *httptest.Server, token string) *Client {
	t.Helper()
	client, err := NewClient(server.URL, token)
	require.NoError(t, err)
	return client
}

func TestNewClientValidatesURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "valid http URL", baseURL: "http://hub.example.com:8090", wantErr: false},
		{name: "valid https URL", baseURL: "https://hub.example.com", wantErr: false},
		{name: "empty URL", baseURL: "", wantErr: true},
		{name: "missing scheme", baseURL: "hub.example.com", wantErr: true},
		{name: "scheme only", baseURL: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, "")
			if tt.wantErr {
				var configErr *ConfigError
				require.Error(t, err)
				assert.True(t, errors.As(err, &configErr))
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				require.NotNil(t, client)
			}
		})
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	client, err := NewClient("http://hub.example.com:8090/", "")
	require.NoError(t, err)
	assert.Equal(t, "http://hub.example.com:8090", client.BaseURL())
}

func TestClientSendsRawTokenHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(ListResult{Items: []Record{}})
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok-abc123")
	_, err := client.ListRecords(context.Background(), ListQuery{Collection: "systems"})
	require.NoError(t, err)

	// The hub expects the bare token, no scheme prefix.
	assert.Equal(t, "tok-abc123", gotAuth)
}

func TestClientOmitsAuthHeaderWithoutToken(t *testing.T) {
	var hadAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(ListResult{Items: []Record{}})
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	_, err := client.ListRecords(context.Background(), ListQuery{Collection: "systems"})
	require.NoError(t, err)
	assert.False(t, hadAuth)
}

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/collections/users/auth-with-password", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["identity"])
		assert.Equal(t, "hunter2", body["password"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-new",
			"record": map[string]interface{}{
				"id":    "user1",
				"email": "admin@example.com",
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	token, err := client.Login(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-new", token)
	assert.True(t, client.HasToken())
}

func TestLoginRejectedCredentials(t *testing.T) {
	// PocketBase answers bad credentials with 400, not 401.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    400,
			"message": "Failed to authenticate.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	token, err := client.Login(context.Background(), "admin@example.com", "wrong")

	var authErr *AuthError
	require.Error(t, err)
	assert.True(t, errors.As(err, &authErr))
	assert.Contains(t, authErr.Error(), "Failed to authenticate.")
	assert.Empty(t, token)
	assert.False(t, client.HasToken())
}

func TestLoginRequiresIdentityAndPassword(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(t, server, "")

	var validationErr *ValidationError
	_, err := client.Login(context.Background(), "", "hunter2")
	assert.True(t, errors.As(err, &validationErr))

	_, err = client.Login(context.Background(), "admin@example.com", "")
	assert.True(t, errors.As(err, &validationErr))

	// Local validation never touches the network.
	assert.Zero(t, requests)
}

func TestWhoami(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/collections/users/auth-refresh", r.URL.Path)
		assert.Equal(t, "tok-abc", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "tok-refreshed",
			"record": map[string]interface{}{
				"id":    "user1",
				"email": "admin@example.com",
				"name":  "Admin",
			},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok-abc")
	record, err := client.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user1", record.ID())
	assert.Equal(t, "admin@example.com", record.GetString("email"))
}

func TestWhoamiWithoutToken(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := newTestClient(t, server, "")
	_, err := client.Whoami(context.Background())

	var authErr *AuthError
	require.Error(t, err)
	assert.True(t, errors.As(err, &authErr))
	assert.Zero(t, requests)
}

func TestWhoamiExpiredToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    401,
			"message": "The request requires valid record authorization token to be set.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok-expired")
	_, err := client.Whoami(context.Background())

	var authErr *AuthError
	require.Error(t, err)
	assert.True(t, errors.As(err, &authErr))
}

func TestBackendErrorCarriesMessageVerbatim(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    500,
			"message": "Something went wrong while processing your request.",
		})
	}))
	defer server.Close()

	client := newTestClient(t, server, "tok")
	_, err := client.ListRecords(context.Background(), ListQuery{Collection: "systems"})

	var backendErr *BackendError
	require.Error(t, err)
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusInternalServerError, backendErr.StatusCode)
	assert.Equal(t, "Something went wrong while processing your request.", backendErr.Message)
}

func TestNetworkErrorOnUnreachableHub(t *testing.T) {
	// Grab a port nobody is listening on.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(server.URL, "tok")
	require.NoError(t, err)

	_, err = client.ListRecords(context.Background(), ListQuery{Collection: "systems"})

	var netErr *NetworkError
	require.Error(t, err)
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, NetworkErrorRefused, netErr.Type)
}

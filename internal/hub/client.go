package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"beszelctl/pkg/logging"
)

// requestTimeout bounds every call to the hub so a hung backend cannot
// hang the CLI. Timeouts surface as NetworkError.
const requestTimeout = 30 * time.Second

// Client is an ephemeral session against one hub. It is constructed per
// invocation from stored credentials and holds the base URL and an
// optional auth token. It is not persisted.
//
// The client performs no retries and no automatic token refresh: an
// expired token surfaces as AuthError and re-login is the caller's job.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a session client for the given hub URL. The token may
// be empty, in which case only Login is expected to succeed.
// Returns ConfigError when the URL is missing or unparseable.
func NewClient(baseURL, token string) (*Client, error) {
	if baseURL == "" {
		return nil, &ConfigError{Reason: "no hub URL configured"}
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &ConfigError{Reason: fmt.Sprintf("invalid hub URL %q", baseURL)}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: requestTimeout,
		},
	}, nil
}

// BaseURL returns the hub URL this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HasToken reports whether the client carries an auth token.
func (c *Client) HasToken() bool {
	return c.token != ""
}

// backendError is the PocketBase error envelope.
type backendError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// do is the single low-level primitive every hub operation funnels
// through. It attaches the base URL and auth token, serializes the query
// parameters and JSON body, and translates failures into the typed error
// taxonomy: 401/403 to AuthError, 404 to NotFoundError, other non-2xx to
// BackendError with the backend message verbatim, and transport failures
// to NetworkError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyNetworkError(err, c.baseURL)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyNetworkError(err, c.baseURL)
	}

	logging.Debug("HubClient", "%s %s -> %d", method, path, resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	var be backendError
	_ = json.Unmarshal(respBody, &be)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &AuthError{Message: backendMessage(be, resp.StatusCode)}
	case http.StatusNotFound:
		return nil, &NotFoundError{}
	default:
		return nil, &BackendError{StatusCode: resp.StatusCode, Message: be.Message}
	}
}

func backendMessage(be backendError, status int) string {
	if be.Message != "" {
		return be.Message
	}
	return fmt.Sprintf("hub rejected the request with status %d", status)
}

// authResponse is the PocketBase credential-exchange envelope.
type authResponse struct {
	Token  string `json:"token"`
	Record Record `json:"record"`
}

// Login exchanges an identity (email) and password for an auth token.
// Rejected credentials surface as AuthError; the stored credential file
// is untouched by this call.
func (c *Client) Login(ctx context.Context, identity, password string) (string, error) {
	if identity == "" || password == "" {
		return "", &ValidationError{Field: "credentials", Reason: "identity and password are required"}
	}

	body := map[string]string{"identity": identity, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/api/collections/users/auth-with-password", nil, body)
	if err != nil {
		// PocketBase answers failed password exchanges with 400.
		var be *BackendError
		if errors.As(err, &be) && be.StatusCode == http.StatusBadRequest {
			return "", &AuthError{Message: be.Message}
		}
		return "", err
	}

	var auth authResponse
	if err := json.Unmarshal(data, &auth); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if auth.Token == "" {
		return "", &AuthError{Message: "hub returned no token"}
	}

	c.token = auth.Token
	return auth.Token, nil
}

// Whoami returns the identity record associated with the current token.
// Fails with AuthError when the token is absent or rejected by the hub.
// The refreshed token PocketBase returns alongside the record is
// deliberately discarded: this client never refreshes tokens on its own.
func (c *Client) Whoami(ctx context.Context) (Record, error) {
	if c.token == "" {
		return nil, &AuthError{Message: "not logged in"}
	}

	data, err := c.do(ctx, http.MethodPost, "/api/collections/users/auth-refresh", nil, nil)
	if err != nil {
		return nil, err
	}

	var auth authResponse
	if err := json.Unmarshal(data, &auth); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	return auth.Record, nil
}

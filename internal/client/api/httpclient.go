package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/authgate/internal/common"
)

// HTTPClient implements Client over plain HTTP.
type HTTPClient struct {
	httpClient *http.Client
}

// NewHTTPClient constructs an HTTPClient whose individual requests are
// bounded by timeout (callers may bound them tighter via context).
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{httpClient: &http.Client{Timeout: timeout}}
}

// tokenResponse and errorResponse mirror the server's JSON bodies.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Ping issues GET {baseURL}/ping. The server counts as alive only when it
// answers with a success status and a JSON-decodable body; a listening
// socket alone is not enough. Every other outcome maps to
// common.ErrUnavailable.
func (c *HTTPClient) Ping(ctx context.Context, baseURL string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return common.ErrUnavailable
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return common.ErrUnavailable
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return common.ErrUnavailable
	}
	return nil
}

// Token exchanges credentials for a bearer token via POST {baseURL}/token
// with a form-encoded body, as the issuance endpoint requires.
//
// A failure status is returned as *common.ServerRejection carrying the
// server's detail message, if any. A success response whose body cannot
// be decoded, or that carries an empty access_token, is
// common.ErrMalformedResponse. No response at all is common.ErrUnavailable.
// The request body is never logged.
func (c *HTTPClient) Token(ctx context.Context, baseURL, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", common.ErrUnavailable
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return "", &common.ServerRejection{Detail: er.Detail}
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", common.ErrMalformedResponse
	}
	if tr.AccessToken == "" {
		return "", common.ErrMalformedResponse
	}
	return tr.AccessToken, nil
}

// CurrentUser issues GET {baseURL}/users/me/ with the access token as a
// bearer credential.
func (c *HTTPClient) CurrentUser(ctx context.Context, baseURL, accessToken string) (*User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/users/me/", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, common.ErrorUnauthorized
	}
	if !isSuccess(resp.StatusCode) {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return nil, &common.ServerRejection{Detail: er.Detail}
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, common.ErrMalformedResponse
	}
	return &user, nil
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

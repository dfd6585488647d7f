package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL = "https://api.github.com"
	usersPath      = "users"
	apiVersion     = "2022-11-28"

	maxBodySize = 1 << 20
)

// HTTPClient is the subset of *http.Client the Client needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	HTTPClient HTTPClient
	Logger     *log.Logger
}

// Client looks up user profiles on the GitHub REST API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	logger     *log.Logger
}

// NewClient creates a new GitHub API client
func NewClient(opts Options) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// FetchUser fetches the public profile for username.
//
// Failures wrap one of ErrMalformedRequest, ErrUserNotFound,
// ErrInvalidResponse, ErrEmptyPayload or ErrDecoding. If ctx is done before
// the exchange completes the context error is returned instead.
func (c *Client) FetchUser(ctx context.Context, username string) (*Profile, error) {
	target, err := c.userURL(username)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errorf(ErrMalformedRequest, "%v", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)

	c.logger.Debug("Fetching user", "url", target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errorf(ErrInvalidResponse, "request failed: %v", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errorf(ErrUserNotFound, "%s", username)
	default:
		return nil, errorf(ErrInvalidResponse, "unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errorf(ErrInvalidResponse, "failed to read body: %v", err)
	}

	c.logger.Debug("Fetch completed", "status", resp.StatusCode, "bytes", len(body))

	return decodeProfile(body)
}

// userURL joins the base endpoint, "users" and the percent-encoded username.
func (c *Client) userURL(username string) (string, error) {
	if username == "" {
		return "", errorf(ErrMalformedRequest, "empty username")
	}
	if !utf8.ValidString(username) {
		return "", errorf(ErrMalformedRequest, "username is not valid UTF-8")
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", errorf(ErrMalformedRequest, "invalid base URL: %v", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", errorf(ErrMalformedRequest, "base URL %q is not absolute", c.baseURL)
	}

	// RawPath keeps "/" and "?" in a username escaped inside its segment.
	u := *base
	u.Path = strings.TrimSuffix(base.Path, "/") + "/" + usersPath + "/" + username
	u.RawPath = strings.TrimSuffix(base.EscapedPath(), "/") + "/" + usersPath + "/" + url.PathEscape(username)
	u.RawQuery = ""
	u.Fragment = ""

	return u.String(), nil
}

func decodeProfile(body []byte) (*Profile, error) {
	if len(body) == 0 {
		return nil, ErrEmptyPayload
	}
	if len(body) > maxBodySize {
		return nil, errorf(ErrDecoding, "body exceeds %d bytes", maxBodySize)
	}

	var resp userResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, errorf(ErrDecoding, "malformed JSON at offset %d", syntaxErr.Offset)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}

	return resp.toProfile()
}

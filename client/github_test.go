package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestFetchUser_Success(t *testing.T) {
	var gotPath, gotAccept, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"login":"octocat","avatar_url":"https://x/a.png","public_repos":8,"followers":4000,"following":9}`))
	})

	p, err := c.FetchUser(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Equal(t, "/users/octocat", gotPath)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Empty(t, gotAuth)

	assert.Equal(t, "octocat", p.Handle)
	assert.Nil(t, p.DisplayName)
	assert.Nil(t, p.Biography)
	assert.Equal(t, "https://x/a.png", p.AvatarURL)
	assert.Equal(t, 8, p.PublicRepos)
	assert.Equal(t, 4000, p.Followers)
	assert.Equal(t, 9, p.Following)
	assert.Equal(t, "octocat", p.Name())
}

func TestFetchUser_OptionalFieldsAndUnknownKeys(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK,
		`{"login":"mona","name":"Mona Lisa","bio":null,"avatar_url":"https://x/m.png","public_repos":1,"followers":2,"following":3,"site_admin":false}`))

	p, err := c.FetchUser(context.Background(), "mona")
	require.NoError(t, err)
	require.NotNil(t, p.DisplayName)
	assert.Equal(t, "Mona Lisa", *p.DisplayName)
	assert.Equal(t, "Mona Lisa", p.Name())
	assert.Nil(t, p.Biography)
	assert.Equal(t, "", p.Bio())
}

func TestFetchUser_EscapesUsername(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.FetchUser(context.Background(), "a b/c?d")
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, "/users/a%20b%2Fc%3Fd", gotPath)
}

func TestFetchUser_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Not Found"}`, wantErr: ErrUserNotFound},
		{name: "server error", status: http.StatusInternalServerError, wantErr: ErrInvalidResponse},
		{name: "forbidden", status: http.StatusForbidden, body: `{"message":"rate limited"}`, wantErr: ErrInvalidResponse},
		{name: "no content", status: http.StatusNoContent, wantErr: ErrInvalidResponse},
		{name: "empty body", status: http.StatusOK, body: "", wantErr: ErrEmptyPayload},
		{name: "malformed json", status: http.StatusOK, body: `{not json`, wantErr: ErrDecoding},
		{name: "wrong shape", status: http.StatusOK, body: `[1,2,3]`, wantErr: ErrDecoding},
		{name: "wrong field type", status: http.StatusOK, body: `{"login":42,"avatar_url":"u"}`, wantErr: ErrDecoding},
		{name: "missing login", status: http.StatusOK, body: `{"avatar_url":"u"}`, wantErr: ErrDecoding},
		{name: "missing avatar", status: http.StatusOK, body: `{"login":"x"}`, wantErr: ErrDecoding},
		{name: "negative count", status: http.StatusOK, body: `{"login":"x","avatar_url":"u","followers":-1}`, wantErr: ErrDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respond(tt.status, tt.body))

			p, err := c.FetchUser(context.Background(), "someone")
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchUser_OversizeBody(t *testing.T) {
	c := newTestClient(t, respond(http.StatusOK, `{"login":"x","bio":"`+strings.Repeat("a", maxBodySize)+`"}`))

	_, err := c.FetchUser(context.Background(), "x")
	assert.ErrorIs(t, err, ErrDecoding)
}

func TestFetchUser_MalformedRequest(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		username string
	}{
		{name: "empty username", baseURL: DefaultBaseURL, username: ""},
		{name: "invalid utf8", baseURL: DefaultBaseURL, username: "bad\xff"},
		{name: "unparseable base", baseURL: "http://[::1", username: "x"},
		{name: "relative base", baseURL: "api.github.com", username: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(Options{BaseURL: tt.baseURL, HTTPClient: failingDoer{}})

			_, err := c.FetchUser(context.Background(), tt.username)
			assert.ErrorIs(t, err, ErrMalformedRequest)
		})
	}
}

func TestFetchUser_TransportFailure(t *testing.T) {
	c := NewClient(Options{HTTPClient: failingDoer{}})

	_, err := c.FetchUser(context.Background(), "octocat")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFetchUser_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(Options{HTTPClient: failingDoer{}})

	_, err := c.FetchUser(ctx, "octocat")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrInvalidResponse)
}

func TestUserURL_KeepsBasePath(t *testing.T) {
	c := NewClient(Options{BaseURL: "https://ghe.example.com/api/v3/"})

	got, err := c.userURL("octocat")
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/users/octocat", got)
}

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestProfileClone(t *testing.T) {
	name, bio := "Mona", "hi"
	p := &Profile{Handle: "mona", DisplayName: &name, Biography: &bio}

	cp := p.Clone()
	*cp.DisplayName = "x"
	*cp.Biography = "y"
	cp.Handle = "z"

	assert.Equal(t, "Mona", *p.DisplayName)
	assert.Equal(t, "hi", *p.Biography)
	assert.Equal(t, "mona", p.Handle)
}

package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fmt.Sprintf("/repos/%s/%s/releases/latest", defaultOwner, defaultRepo), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/%s/%s/releases/tag/%s"}`,
			tag, defaultOwner, defaultRepo, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckUpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.3.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
	assert.Contains(t, result.ReleaseURL, "v1.3.0")
}

func TestCheckAlreadyLatest(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
	}{
		{"equal", "1.3.0", "v1.3.0"},
		{"ahead of release", "1.4.0", "v1.3.0"},
		{"dev build newer", "v2.0.0-rc1", "v1.9.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, tt.latest)
			checker := NewChecker(WithBaseURL(srv.URL))

			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.False(t, result.UpdateAvailable)
		})
	}
}

func TestCheckEmptyVersionTreatedAsZero(t *testing.T) {
	srv := releaseServer(t, "v0.1.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: ""})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	checker := NewChecker(WithBaseURL(srv.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestCheckMissingTagName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"html_url": "https://example.com"}`)
	}))
	t.Cleanup(srv.Close)

	checker := NewChecker(WithBaseURL(srv.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "1.0.0"})
	require.Error(t, err)
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "v0.0.0"},
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, canonicalVersion(tt.in))
	}
}

package release

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/belay-dotnet/Belay.NET/releases", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		releases := []Release{
			{TagName: "v0.1.0", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{TagName: "v0.3.0-draft", Draft: true, PublishedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
			{TagName: "v0.2.0", Prerelease: true, PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		}
		require.NoError(t, json.NewEncoder(w).Encode(releases))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "belay-dotnet/Belay.NET")
	releases, err := client.List(context.Background())
	require.NoError(t, err)

	// drafts dropped, newest first, prereleases kept
	require.Len(t, releases, 2)
	assert.Equal(t, "v0.2.0", releases[0].TagName)
	assert.Equal(t, "v0.1.0", releases[1].TagName)
	assert.Equal(t, []string{"v0.2.0", "v0.1.0"}, Tags(releases))
}

func TestClientListAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "belay-dotnet/Belay.NET").List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestClientListUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, "belay-dotnet/Belay.NET").List(context.Background())
	require.Error(t, err)
}

package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersion(t *testing.T) {
	defer func(v, c, b string) { Version, Commit, BuildTime = v, c, b }(Version, Commit, BuildTime)

	Version, Commit, BuildTime = "1.2.0", "", ""
	assert.Equal(t, "1.2.0 (development)", FormatVersion())

	Commit = "abc1234"
	assert.Equal(t, "1.2.0 (commit: abc1234)", FormatVersion())

	BuildTime = "2026-03-01T10:00:00Z"
	assert.Equal(t, "1.2.0 (commit: abc1234, built at: 2026-03-01T10:00:00Z)", FormatVersion())
}

func TestLatestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": "v1.3.0"}`))
	}))
	defer srv.Close()

	defer func(u string) { releasesURL = u }(releasesURL)
	releasesURL = srv.URL

	latest, newer := LatestVersion("1.2.0")
	assert.Equal(t, "1.3.0", latest)
	assert.True(t, newer)

	_, newer = LatestVersion("1.3.0")
	assert.False(t, newer)

	_, newer = LatestVersion("0.0.0-dev")
	assert.False(t, newer)
}

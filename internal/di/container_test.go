package di_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/univac-1/ai-info-rss-feed/internal/di"
	feedService "github.com/univac-1/ai-info-rss-feed/internal/modules/feed/service"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
	sourceDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/config"
	httpServer "github.com/univac-1/ai-info-rss-feed/internal/transport/http"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetupWithBuiltInDefaults(t *testing.T) {
	injector := di.Setup(&config.Config{HTTPPort: "0"}, quietLogger())

	registry, err := do.Invoke[*sourceDomain.Registry](injector)
	require.NoError(t, err)
	assert.Equal(t, 8, registry.Len())

	site, err := do.Invoke[siteDomain.Config](injector)
	require.NoError(t, err)
	assert.Equal(t, "https://univac-1.github.io/ai-info-rss-feed/feeds/atom.xml", site.FeedURLs.Atom)

	feeds, err := do.Invoke[*feedService.Service](injector)
	require.NoError(t, err)
	now := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(-8*24*time.Hour), feeds.AggregateSince(now))

	_, err = do.Invoke[*httpServer.Server](injector)
	require.NoError(t, err)
}

func TestSetupPropagatesLoadErrors(t *testing.T) {
	t.Run("missing sources file", func(t *testing.T) {
		cfg := &config.Config{SourcesPath: filepath.Join(t.TempDir(), "feeds.toml")}
		injector := di.Setup(cfg, quietLogger())

		_, err := do.Invoke[*sourceDomain.Registry](injector)
		require.Error(t, err)

		_, err = do.Invoke[*httpServer.Server](injector)
		require.Error(t, err)
	})

	t.Run("unsupported site file", func(t *testing.T) {
		cfg := &config.Config{SitePath: "site.ini"}
		injector := di.Setup(cfg, quietLogger())

		_, err := do.Invoke[siteDomain.Config](injector)
		assert.ErrorContains(t, err, "unsupported file format")
	})
}

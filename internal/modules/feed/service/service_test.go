package service_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/feed/service"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
)

func newService(t *testing.T, mutate func(*siteDomain.Settings)) *service.Service {
	t.Helper()
	settings := siteDomain.DefaultSettings()
	if mutate != nil {
		mutate(&settings)
	}
	cfg, err := siteDomain.NewConfig(settings)
	require.NoError(t, err)
	return service.New(cfg)
}

func TestChannelCarriesSiteIdentity(t *testing.T) {
	svc := newService(t, nil)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	feed := svc.Channel(now)
	assert.Equal(t, "AI関連情報RSS", feed.Title)
	assert.Equal(t, "https://univac-1.github.io/ai-info-rss-feed/", feed.Link.Href)
	assert.Equal(t, "https://univac-1.github.io/ai-info-rss-feed/images/icon.png", feed.Image.Url)
	assert.Nil(t, feed.Author)
	assert.Empty(t, feed.Items)
}

func TestRender(t *testing.T) {
	svc := newService(t, nil)
	feed := svc.Channel(time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC))

	t.Run("atom", func(t *testing.T) {
		out, err := svc.Render(feed, siteDomain.FeedFormatAtom)
		require.NoError(t, err)
		assert.Contains(t, out, "<title>AI関連情報RSS</title>")
		assert.Contains(t, out, "<generator>univac-1/ai-info-rss-feed</generator>")
		assert.Contains(t, out, "<icon>https://univac-1.github.io/ai-info-rss-feed/images/favicon.ico</icon>")
		assert.Contains(t, out, "<logo>https://univac-1.github.io/ai-info-rss-feed/images/icon.png</logo>")
		assert.Contains(t, out, `<link href="https://univac-1.github.io/ai-info-rss-feed/feeds/atom.xml" rel="self" type="application/atom+xml"></link>`)
		assert.Contains(t, out, `<link href="https://univac-1.github.io/ai-info-rss-feed/"></link>`)
		assert.NotContains(t, out, "<author>")
	})

	t.Run("rss", func(t *testing.T) {
		out, err := svc.Render(feed, siteDomain.FeedFormatRss)
		require.NoError(t, err)
		assert.Contains(t, out, "<description>AI関連情報をまとめたRSSフィード</description>")
		assert.Contains(t, out, "<language>ja</language>")
		assert.Contains(t, out, "<generator>univac-1/ai-info-rss-feed</generator>")
		assert.Contains(t, out, "<url>https://univac-1.github.io/ai-info-rss-feed/images/icon.png</url>")
		assert.NotContains(t, out, "managingEditor")
	})

	t.Run("json", func(t *testing.T) {
		out, err := svc.Render(feed, siteDomain.FeedFormatJson)
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "https://univac-1.github.io/ai-info-rss-feed/", got["home_page_url"])
		assert.Equal(t, "https://univac-1.github.io/ai-info-rss-feed/feeds/feed.json", got["feed_url"])
		assert.Equal(t, "ja", got["language"])
		assert.Equal(t, "https://univac-1.github.io/ai-info-rss-feed/images/favicon.ico", got["favicon"])
		assert.Equal(t, "https://univac-1.github.io/ai-info-rss-feed/images/icon.png", got["icon"])
		assert.Equal(t, []any{map[string]any{"name": "univac-1", "url": "https://github.com/univac-1"}}, got["authors"])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := svc.Render(feed, siteDomain.FeedFormat("opml"))
		assert.ErrorIs(t, err, siteDomain.ErrInvalidFeedFormat)
	})
}

func TestSelfLink(t *testing.T) {
	svc := newService(t, func(s *siteDomain.Settings) { s.SiteURL = "https://example.org/" })

	assert.Equal(t, "https://example.org/feeds/atom.xml", svc.SelfLink(siteDomain.FeedFormatAtom))
	assert.Equal(t, "https://example.org/feeds/rss.xml", svc.SelfLink(siteDomain.FeedFormatRss))
	assert.Equal(t, "https://example.org/feeds/feed.json", svc.SelfLink(siteDomain.FeedFormatJson))
}

func TestAggregateSince(t *testing.T) {
	svc := newService(t, nil)
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 10, 8, 0, 0, 0, 0, time.UTC), svc.AggregateSince(now))
}

func TestTruncate(t *testing.T) {
	svc := newService(t, func(s *siteDomain.Settings) {
		s.Tunables.MaxFeedDescriptionLength = 5
		s.Tunables.MaxFeedContentLength = 8
	})

	tests := []struct {
		name     string
		fn       func(string) string
		input    string
		expected string
	}{
		{"short description", svc.TruncateDescription, "abc", "abc"},
		{"exact description", svc.TruncateDescription, "abcde", "abcde"},
		{"long description", svc.TruncateDescription, "abcdefg", "abcde..."},
		{"multibyte description", svc.TruncateDescription, "生成AIの最新動向", "生成AIの..."},
		{"long content", svc.TruncateContent, strings.Repeat("x", 20), "xxxxxxxx..."},
		{"empty content", svc.TruncateContent, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.fn(tt.input))
		})
	}
}

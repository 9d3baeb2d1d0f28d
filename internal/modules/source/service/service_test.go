package service_test

import (
	"bytes"
	"encoding/xml"
	stderrors "errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/service"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
)

type stubRepository struct {
	sources []domain.FeedSource
	err     error
}

func (r *stubRepository) LoadSources() ([]domain.FeedSource, error) {
	return r.sources, r.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadRegistry(t *testing.T) {
	svc := service.New(&stubRepository{sources: []domain.FeedSource{
		{Label: "ITmedia AI+", URL: "https://rss.itmedia.co.jp/rss/2.0/aiplus.xml"},
		{Label: "Zenn（AIタグ）", URL: "https://zenn.dev/topics/ai/feed"},
	}}, quietLogger())

	reg, err := svc.LoadRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{"ITmedia AI+", "Zenn（AIタグ）"}, reg.Labels())
}

func TestLoadRegistryReturnsConfigurationError(t *testing.T) {
	var logs bytes.Buffer
	svc := service.New(&stubRepository{sources: []domain.FeedSource{
		{Label: "Broken", URL: "mailto:feeds@example.org"},
	}}, slog.New(slog.NewTextHandler(&logs, nil)))

	reg, err := svc.LoadRegistry()
	assert.Nil(t, reg)

	var cfgErr *errors.ConfigurationError
	require.True(t, stderrors.As(err, &cfgErr))
	assert.Equal(t, "Broken", cfgErr.Problems[0].Label)
	assert.Contains(t, logs.String(), "Feed registry rejected")
}

func TestLoadRegistryRepositoryFailure(t *testing.T) {
	boom := stderrors.New("disk on fire")
	svc := service.New(&stubRepository{err: boom}, nil)

	_, err := svc.LoadRegistry()
	assert.ErrorIs(t, err, boom)
}

func TestExportOPML(t *testing.T) {
	reg, err := domain.NewRegistry([]domain.FeedSource{
		{Label: "ITmedia AI+", URL: "https://rss.itmedia.co.jp/rss/2.0/aiplus.xml", Category: "news"},
		{Label: "Loose", URL: "https://loose.example.com/feed"},
		{Label: "Zenn（AIタグ）", URL: "https://zenn.dev/topics/ai/feed", Category: "community"},
		{Label: "Publickey", URL: "https://www.publickey1.jp/atom.xml", Category: "news"},
	})
	require.NoError(t, err)

	site, err := siteDomain.NewConfig(siteDomain.DefaultSettings())
	require.NoError(t, err)

	out, err := service.ExportOPML(reg, site, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte(xml.Header)))

	var doc struct {
		Version string `xml:"version,attr"`
		Head    struct {
			Title       string `xml:"title"`
			DateCreated string `xml:"dateCreated"`
		} `xml:"head"`
		Body struct {
			Outlines []struct {
				Text     string `xml:"text,attr"`
				XMLURL   string `xml:"xmlUrl,attr"`
				Children []struct {
					Text   string `xml:"text,attr"`
					XMLURL string `xml:"xmlUrl,attr"`
				} `xml:"outline"`
			} `xml:"outline"`
		} `xml:"body"`
	}
	require.NoError(t, xml.Unmarshal(out, &doc))

	assert.Equal(t, "2.0", doc.Version)
	assert.Equal(t, "AI関連情報RSS", doc.Head.Title)
	assert.Equal(t, "Fri, 02 Jan 2026 03:04:05 +0000", doc.Head.DateCreated)

	require.Len(t, doc.Body.Outlines, 3)
	assert.Equal(t, "news", doc.Body.Outlines[0].Text)
	require.Len(t, doc.Body.Outlines[0].Children, 2)
	assert.Equal(t, "ITmedia AI+", doc.Body.Outlines[0].Children[0].Text)
	assert.Equal(t, "https://www.publickey1.jp/atom.xml", doc.Body.Outlines[0].Children[1].XMLURL)
	assert.Equal(t, "community", doc.Body.Outlines[1].Text)
	assert.Equal(t, "Loose", doc.Body.Outlines[2].Text)
	assert.Equal(t, "https://loose.example.com/feed", doc.Body.Outlines[2].XMLURL)
}

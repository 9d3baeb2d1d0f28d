package domain

import (
	"strings"

	"github.com/samber/oops"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/validation"
)

var settingsRules = validation.Rules{
	"notblank": errors.ErrEmptySetting,
	"feedurl":  errors.ErrInvalidFeedURL,
	"noquery":  errors.ErrSiteURLQuery,
	"gt":       errors.ErrNonPositiveTunable,
	"max":      errors.ErrTunableTooLarge,
}

// Settings is the raw, unvalidated input for a site Config.
type Settings struct {
	SiteURL           string   `koanf:"site_url" validate:"notblank,feedurl,noquery"`
	SiteTitle         string   `koanf:"site_title" validate:"notblank"`
	SiteDescription   string   `koanf:"site_description" validate:"notblank"`
	FeedLanguage      string   `koanf:"feed_language" validate:"notblank"`
	FeedCopyright     string   `koanf:"feed_copyright" validate:"notblank"`
	FeedGenerator     string   `koanf:"feed_generator" validate:"notblank"`
	AuthorName        string   `koanf:"author_name" validate:"notblank"`
	AuthorURL         string   `koanf:"author_url" validate:"notblank"`
	RepositoryURL     string   `koanf:"repository_url" validate:"notblank"`
	GoogleAnalyticsID string   `koanf:"google_analytics_id" validate:"notblank"`
	RequestUserAgent  string   `koanf:"request_user_agent" validate:"notblank"`
	Tunables          Tunables `koanf:"tunables"`
}

// Config is the fully resolved site configuration. It holds no reference types,
// so every copy handed to a consumer is independent and the value is effectively immutable.
type Config struct {
	Identity         Identity  `json:"identity"`
	FeedURLs         FeedURLs  `json:"feedUrls"`
	Author           Author    `json:"author"`
	Analytics        Analytics `json:"analytics"`
	RequestUserAgent string    `json:"requestUserAgent"`
	Tunables         Tunables  `json:"tunables"`
}

type Identity struct {
	SiteURL         string `json:"siteUrl"`
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	FeedLanguage    string `json:"feedLanguage"`
	FeedCopyright   string `json:"feedCopyright"`
	FeedGenerator   string `json:"feedGenerator"`
	ImageURL        string `json:"imageUrl"`
	FaviconURL      string `json:"faviconUrl"`
}

// FeedURLs are the absolute locations the output artifacts are published at.
type FeedURLs struct {
	Atom string `json:"atom"`
	RSS  string `json:"rss"`
	JSON string `json:"json"`
}

// For returns the URL of format, or "" for an unknown format.
func (f FeedURLs) For(format FeedFormat) string {
	switch format {
	case FeedFormatAtom:
		return f.Atom
	case FeedFormatRss:
		return f.RSS
	case FeedFormatJson:
		return f.JSON
	default:
		return ""
	}
}

type Author struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	RepositoryURL string `json:"repositoryUrl"`
}

type Analytics struct {
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
}

// NewConfig validates s and resolves every derived field. All problems are
// reported together in a single *errors.ConfigurationError.
func NewConfig(s Settings) (Config, error) {
	found, err := validation.Struct(s, settingsRules)
	if err != nil {
		return Config{}, oops.With("context", "validating site settings").Wrap(err)
	}

	problems := errors.NewCollector("site configuration")
	for _, p := range found {
		problems.Add(p)
	}

	if err := problems.Err(); err != nil {
		return Config{}, err
	}

	siteURL := s.SiteURL
	if !strings.HasSuffix(siteURL, "/") {
		siteURL += "/"
	}

	return Config{
		Identity: Identity{
			SiteURL:         siteURL,
			SiteTitle:       s.SiteTitle,
			SiteDescription: s.SiteDescription,
			FeedLanguage:    s.FeedLanguage,
			FeedCopyright:   s.FeedCopyright,
			FeedGenerator:   s.FeedGenerator,
			ImageURL:        siteURL + "images/icon.png",
			FaviconURL:      siteURL + "images/favicon.ico",
		},
		FeedURLs: FeedURLs{
			Atom: siteURL + "feeds/" + FeedFormatAtom.FileName(),
			RSS:  siteURL + "feeds/" + FeedFormatRss.FileName(),
			JSON: siteURL + "feeds/" + FeedFormatJson.FileName(),
		},
		Author: Author{
			Name:          s.AuthorName,
			URL:           s.AuthorURL,
			RepositoryURL: s.RepositoryURL,
		},
		Analytics: Analytics{
			GoogleAnalyticsID: s.GoogleAnalyticsID,
		},
		RequestUserAgent: s.RequestUserAgent,
		Tunables:         s.Tunables,
	}, nil
}

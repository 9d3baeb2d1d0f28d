package domain

// Built-in tunable values used when no settings file overrides them.
const (
	DefaultFeedFetchConcurrency            = 50
	DefaultFeedOgFetchConcurrency          = 20
	DefaultAggregateFeedDurationInHours    = 8 * 24
	DefaultMaxFeedDescriptionLength        = 200
	DefaultMaxFeedContentLength            = 500
	DefaultProcessImageConcurrency         = 20
	DefaultEleventyFetchConcurrency        = 50
	DefaultFetchedFeedCacheDurationInHours = 1
	DefaultFetchedOgCacheDurationInHours   = 3 * 24
)

// DefaultSettings returns the settings of the published AI news site.
func DefaultSettings() Settings {
	return Settings{
		SiteURL:           "https://univac-1.github.io/ai-info-rss-feed/",
		SiteTitle:         "AI関連情報RSS",
		SiteDescription:   "AI関連情報をまとめたRSSフィード",
		FeedLanguage:      "ja",
		FeedCopyright:     "univac-1/ai-info-rss-feed",
		FeedGenerator:     "univac-1/ai-info-rss-feed",
		AuthorName:        "univac-1",
		AuthorURL:         "https://github.com/univac-1",
		RepositoryURL:     "https://github.com/univac-1/ai-info-rss-feed",
		GoogleAnalyticsID: "G-AIINFORSSFEED",
		RequestUserAgent:  "Mozilla/5.0 (compatible; ai-info-rss-feed/1.0; +https://github.com/univac-1/ai-info-rss-feed)",
		Tunables: Tunables{
			FeedFetchConcurrency:            DefaultFeedFetchConcurrency,
			FeedOgFetchConcurrency:          DefaultFeedOgFetchConcurrency,
			AggregateFeedDurationInHours:    DefaultAggregateFeedDurationInHours,
			MaxFeedDescriptionLength:        DefaultMaxFeedDescriptionLength,
			MaxFeedContentLength:            DefaultMaxFeedContentLength,
			ProcessImageConcurrency:         DefaultProcessImageConcurrency,
			EleventyFetchConcurrency:        DefaultEleventyFetchConcurrency,
			FetchedFeedCacheDurationInHours: DefaultFetchedFeedCacheDurationInHours,
			FetchedOgCacheDurationInHours:   DefaultFetchedOgCacheDurationInHours,
		},
	}
}

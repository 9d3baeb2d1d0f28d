package domain

import (
	"math"
	"time"
)

// Tunables bound or time operations performed by the aggregation pipeline.
// Durations are whole hours; concurrency values cap simultaneous outstanding operations.
type Tunables struct {
	FeedFetchConcurrency            int `json:"feedFetchConcurrency" koanf:"feed_fetch_concurrency" validate:"gt=0"`
	FeedOgFetchConcurrency          int `json:"feedOgFetchConcurrency" koanf:"feed_og_fetch_concurrency" validate:"gt=0"`
	AggregateFeedDurationInHours    int `json:"aggregateFeedDurationInHours" koanf:"aggregate_feed_duration_in_hours" validate:"gt=0,max=2562047"`
	MaxFeedDescriptionLength        int `json:"maxFeedDescriptionLength" koanf:"max_feed_description_length" validate:"gt=0"`
	MaxFeedContentLength            int `json:"maxFeedContentLength" koanf:"max_feed_content_length" validate:"gt=0"`
	ProcessImageConcurrency         int `json:"processImageConcurrency" koanf:"process_image_concurrency" validate:"gt=0"`
	EleventyFetchConcurrency        int `json:"eleventyFetchConcurrency" koanf:"eleventy_fetch_concurrency" validate:"gt=0"`
	FetchedFeedCacheDurationInHours int `json:"fetchedFeedCacheDurationInHours" koanf:"fetched_feed_cache_duration_in_hours" validate:"gt=0,max=2562047"`
	FetchedOgCacheDurationInHours   int `json:"fetchedOgCacheDurationInHours" koanf:"fetched_og_cache_duration_in_hours" validate:"gt=0,max=2562047"`
}

// MaxDurationHours is the largest hour count a time.Duration can hold. The
// max= rule on the duration tunables above uses this value.
const MaxDurationHours = int(math.MaxInt64 / int64(time.Hour))

func (t Tunables) AggregateWindow() time.Duration {
	return time.Duration(t.AggregateFeedDurationInHours) * time.Hour
}

func (t Tunables) FeedCacheTTL() time.Duration {
	return time.Duration(t.FetchedFeedCacheDurationInHours) * time.Hour
}

func (t Tunables) OgCacheTTL() time.Duration {
	return time.Duration(t.FetchedOgCacheDurationInHours) * time.Hour
}

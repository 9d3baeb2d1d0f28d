package domain

// FeedSource is an external RSS/Atom/JSON feed polled by the aggregation pipeline.
type FeedSource struct {
	Label    string `json:"label" koanf:"label" validate:"notblank"`
	URL      string `json:"url" koanf:"url" validate:"feedurl"`
	Category string `json:"category,omitempty" koanf:"category"`
}

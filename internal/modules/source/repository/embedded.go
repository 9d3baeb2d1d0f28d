package repository

import (
	_ "embed"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
)

//go:embed defaults/feeds.toml
var defaultSources []byte

// Embedded serves the feed list compiled into the binary.
type Embedded struct {
	data []byte
}

// NewEmbedded returns the repository backed by defaults/feeds.toml.
func NewEmbedded() Repository {
	return &Embedded{data: defaultSources}
}

func (e *Embedded) LoadSources() ([]domain.FeedSource, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(e.data), toml.Parser()); err != nil {
		return nil, oops.With("context", "failed to parse embedded feed sources").Wrap(err)
	}

	return unmarshalSources(k, "embedded:defaults/feeds.toml")
}

package repository

import (
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
)

// Repository reads the raw feed source list. Implementations return entries
// as written; validation happens when the registry is built.
type Repository interface {
	LoadSources() ([]domain.FeedSource, error)
}

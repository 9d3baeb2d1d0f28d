package repository

import (
	"github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
)

// Repository supplies the raw site settings.
type Repository interface {
	LoadSettings() (domain.Settings, error)
}

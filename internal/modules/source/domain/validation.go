package domain

import (
	"github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/validation"
)

// ValidateURL checks that raw is an absolute http or https URL whose host contains a dot.
func ValidateURL(raw string) error {
	if err := validation.Var(raw, "feedurl"); err != nil {
		return errors.ErrInvalidFeedURL
	}
	return nil
}

package errors

import "errors"

var (
	ErrInvalidFeedURL     = errors.New("url must be an absolute http(s) URL with a dotted host")
	ErrEmptyLabel         = errors.New("label must not be empty")
	ErrDuplicateLabel     = errors.New("label is already used by another feed source")
	ErrEmptySetting       = errors.New("setting must not be empty")
	ErrNonPositiveTunable = errors.New("tunable must be a positive integer")
	ErrTunableTooLarge    = errors.New("tunable exceeds the largest representable duration")
	ErrSiteURLQuery       = errors.New("site url must not carry a query or fragment")
	ErrInvalidValue       = errors.New("value is invalid")
	ErrUnsupportedFormat  = errors.New("unsupported file format")
	ErrSourceNotFound     = errors.New("feed source not found")
)

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
)

func TestCollectorWithoutProblems(t *testing.T) {
	c := apperrors.NewCollector("feed registry")
	assert.NoError(t, c.Err())
}

func TestConfigurationErrorListsEveryProblem(t *testing.T) {
	c := apperrors.NewCollector("feed registry")
	c.Add(apperrors.Problem{Field: "feeds[0].url", Label: "Broken", Value: "ftp://example.org/feed", Err: apperrors.ErrInvalidFeedURL})
	c.Add(apperrors.Problem{Field: "feeds[2].label", Label: "Twice", Err: apperrors.ErrDuplicateLabel})

	err := c.Err()
	require.Error(t, err)

	var cfgErr *apperrors.ConfigurationError
	require.True(t, stderrors.As(err, &cfgErr))
	assert.Len(t, cfgErr.Problems, 2)

	msg := err.Error()
	assert.Contains(t, msg, "invalid feed registry: 2 problems")
	assert.Contains(t, msg, `feeds[0].url (label "Broken") "ftp://example.org/feed"`)
	assert.Contains(t, msg, `feeds[2].label (label "Twice")`)

	assert.ErrorIs(t, err, apperrors.ErrInvalidFeedURL)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateLabel)
	assert.NotErrorIs(t, err, apperrors.ErrEmptyLabel)
}

func TestConfigurationErrorSingularNoun(t *testing.T) {
	err := &apperrors.ConfigurationError{
		Subject:  "site configuration",
		Problems: []apperrors.Problem{{Field: "tunables.feed_fetch_concurrency", Value: "0", Err: apperrors.ErrNonPositiveTunable}},
	}
	assert.Equal(t,
		`invalid site configuration: 1 problem: tunables.feed_fetch_concurrency "0": tunable must be a positive integer`,
		err.Error())
}

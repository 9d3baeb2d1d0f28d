package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/oops"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/errors"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/validation"
)

// Registry is the ordered, validated set of feed sources for one run.
// It is never mutated after NewRegistry returns.
type Registry struct {
	sources []FeedSource
	byLabel map[string]int
}

type registryInput struct {
	Feeds []FeedSource `koanf:"feeds" validate:"dive"`
}

var sourceRules = validation.Rules{
	"notblank": errors.ErrEmptyLabel,
	"feedurl":  errors.ErrInvalidFeedURL,
}

// NewRegistry validates every entry and returns a registry preserving input order.
// All invalid entries are reported together in a single *errors.ConfigurationError;
// on error no registry is returned.
func NewRegistry(entries []FeedSource) (*Registry, error) {
	found, err := validation.Struct(registryInput{Feeds: entries}, sourceRules)
	if err != nil {
		return nil, oops.With("context", "validating feed registry").Wrap(err)
	}

	// unique=Label flags the list as a whole; each repeat is attributed below
	hasDuplicates := validation.Var(entries, "unique=Label") != nil

	perEntry := make(map[int][]errors.Problem, len(found))
	for _, p := range found {
		var i int
		if _, err := fmt.Sscanf(p.Field, "feeds[%d]", &i); err != nil {
			continue
		}
		if p.Err == errors.ErrEmptyLabel {
			p.Value = entries[i].URL
		} else {
			p.Label = entries[i].Label
		}
		perEntry[i] = append(perEntry[i], p)
	}

	problems := errors.NewCollector("feed registry")
	byLabel := make(map[string]int, len(entries))

	for i, entry := range entries {
		if first, seen := byLabel[entry.Label]; seen && hasDuplicates {
			problems.Add(errors.Problem{
				Field: fmt.Sprintf("feeds[%d].label", i),
				Label: entry.Label,
				Value: fmt.Sprintf("first used by feeds[%d]", first),
				Err:   errors.ErrDuplicateLabel,
			})
		} else if strings.TrimSpace(entry.Label) != "" && !seen {
			byLabel[entry.Label] = i
		}

		for _, p := range perEntry[i] {
			problems.Add(p)
		}
	}

	if err := problems.Err(); err != nil {
		return nil, err
	}

	sources := make([]FeedSource, len(entries))
	copy(sources, entries)

	return &Registry{sources: sources, byLabel: byLabel}, nil
}

// Sources returns a copy of the registry in insertion order.
func (r *Registry) Sources() []FeedSource {
	out := make([]FeedSource, len(r.sources))
	copy(out, r.sources)
	return out
}

func (r *Registry) Len() int {
	return len(r.sources)
}

// Lookup finds a source by its exact label.
func (r *Registry) Lookup(label string) (FeedSource, bool) {
	i, ok := r.byLabel[label]
	if !ok {
		return FeedSource{}, false
	}
	return r.sources[i], true
}

func (r *Registry) Labels() []string {
	return lo.Map(r.sources, func(s FeedSource, _ int) string {
		return s.Label
	})
}

// Categories returns the distinct non-empty categories in first-seen order.
func (r *Registry) Categories() []string {
	categories := lo.FilterMap(r.sources, func(s FeedSource, _ int) (string, bool) {
		return s.Category, s.Category != ""
	})
	return lo.Uniq(categories)
}

// ByCategory returns the sources in category, in registry order. An empty category
// selects uncategorised sources.
func (r *Registry) ByCategory(category string) []FeedSource {
	return lo.Filter(r.sources, func(s FeedSource, _ int) bool {
		return s.Category == category
	})
}

package errors

import (
	"fmt"
	"strings"
)

// Problem is a single invalid entry or setting found while constructing configuration.
type Problem struct {
	// Field names the offending setting or, for registry entries, "feeds[i].url" style paths.
	Field string
	// Label is the feed source label when the problem belongs to a registry entry.
	Label string
	Value string
	Err   error
}

func (p Problem) String() string {
	var b strings.Builder
	b.WriteString(p.Field)
	if p.Label != "" {
		fmt.Fprintf(&b, " (label %q)", p.Label)
	}
	if p.Value != "" {
		fmt.Fprintf(&b, " %q", p.Value)
	}
	b.WriteString(": ")
	b.WriteString(p.Err.Error())
	return b.String()
}

// ConfigurationError reports every problem found while building a configuration
// structure. It is fatal to startup.
type ConfigurationError struct {
	Subject  string
	Problems []Problem
}

func (e *ConfigurationError) Error() string {
	lines := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		lines = append(lines, p.String())
	}

	noun := "problems"
	if len(e.Problems) == 1 {
		noun = "problem"
	}
	return fmt.Sprintf("invalid %s: %d %s: %s", e.Subject, len(e.Problems), noun, strings.Join(lines, "; "))
}

// Unwrap exposes the sentinel error of each problem so errors.Is works on the aggregate.
func (e *ConfigurationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Problems))
	for _, p := range e.Problems {
		errs = append(errs, p.Err)
	}
	return errs
}

// Collector accumulates problems and turns them into a ConfigurationError.
type Collector struct {
	subject  string
	problems []Problem
}

func NewCollector(subject string) *Collector {
	return &Collector{subject: subject}
}

func (c *Collector) Add(p Problem) {
	c.problems = append(c.problems, p)
}

// Err returns nil when no problem was recorded.
func (c *Collector) Err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return &ConfigurationError{Subject: c.subject, Problems: c.problems}
}

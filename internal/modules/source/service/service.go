package service

import (
	"log/slog"

	"github.com/samber/oops"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/repository"
)

// Service turns the raw source list into the validated registry.
type Service struct {
	repo   repository.Repository
	logger *slog.Logger
}

// New creates a new source service
func New(repo repository.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// LoadRegistry reads every source and builds the registry. Validation errors are
// returned unwrapped so callers can report each offending entry.
func (s *Service) LoadRegistry() (*domain.Registry, error) {
	sources, err := s.repo.LoadSources()
	if err != nil {
		return nil, oops.With("context", "failed to load feed sources").Wrap(err)
	}

	registry, err := domain.NewRegistry(sources)
	if err != nil {
		s.logger.Error("Feed registry rejected", "entries", len(sources), "error", err)
		return nil, err
	}

	s.logger.Info("Feed registry loaded",
		"sources", registry.Len(),
		"categories", len(registry.Categories()),
	)
	return registry, nil
}

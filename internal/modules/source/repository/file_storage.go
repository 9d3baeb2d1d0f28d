package repository

import (
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/config"
)

// sourcesKey is the top-level array of tables holding feed sources.
const sourcesKey = "feeds"

// FileStorage implements Repository over a TOML, YAML or JSON file.
type FileStorage struct {
	path   string
	parser koanf.Parser
}

// NewFileStorage creates a file-based source repository. The parser is chosen
// from the file extension.
func NewFileStorage(path string) (Repository, error) {
	parser, err := config.ParserFor(path)
	if err != nil {
		return nil, oops.With("sources_path", path).Wrap(err)
	}

	return &FileStorage{path: path, parser: parser}, nil
}

func (s *FileStorage) LoadSources() ([]domain.FeedSource, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), s.parser); err != nil {
		return nil, oops.With("sources_path", s.path, "context", "failed to read feed sources").Wrap(err)
	}

	return unmarshalSources(k, s.path)
}

func unmarshalSources(k *koanf.Koanf, origin string) ([]domain.FeedSource, error) {
	var sources []domain.FeedSource
	if err := k.Unmarshal(sourcesKey, &sources); err != nil {
		return nil, oops.With("sources_path", origin, "context", "failed to decode feed sources").Wrap(err)
	}

	return sources, nil
}

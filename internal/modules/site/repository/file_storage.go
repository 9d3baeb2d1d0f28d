package repository

import (
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/config"
)

// FileStorage overlays a settings file on top of domain.DefaultSettings.
// An empty path yields the defaults unchanged.
type FileStorage struct {
	path   string
	parser koanf.Parser
}

// NewFileStorage creates a settings repository for path, which may be empty.
func NewFileStorage(path string) (Repository, error) {
	if path == "" {
		return &FileStorage{}, nil
	}

	parser, err := config.ParserFor(path)
	if err != nil {
		return nil, oops.With("site_path", path).Wrap(err)
	}

	return &FileStorage{path: path, parser: parser}, nil
}

func (s *FileStorage) LoadSettings() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.path == "" {
		return settings, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), s.parser); err != nil {
		return domain.Settings{}, oops.With("site_path", s.path, "context", "failed to read site settings").Wrap(err)
	}

	// Keys absent from the file keep their default value
	if err := k.Unmarshal("", &settings); err != nil {
		return domain.Settings{}, oops.With("site_path", s.path, "context", "failed to decode site settings").Wrap(err)
	}

	return settings, nil
}

package di

import (
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/samber/oops"
	feedService "github.com/univac-1/ai-info-rss-feed/internal/modules/feed/service"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
	siteRepo "github.com/univac-1/ai-info-rss-feed/internal/modules/site/repository"
	sourceDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
	sourceRepo "github.com/univac-1/ai-info-rss-feed/internal/modules/source/repository"
	sourceService "github.com/univac-1/ai-info-rss-feed/internal/modules/source/service"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/config"
	httpServer "github.com/univac-1/ai-info-rss-feed/internal/transport/http"
)

// Setup initializes the dependency injection container. Providers are lazy:
// the registry and site configuration are built and validated on first invoke.
func Setup(cfg *config.Config, logger *slog.Logger) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	// Register Source Repository
	do.Provide(injector, func(i do.Injector) (sourceRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.SourcesPath == "" {
			return sourceRepo.NewEmbedded(), nil
		}
		repo, err := sourceRepo.NewFileStorage(cfg.SourcesPath)
		if err != nil {
			return nil, oops.With("sources_path", cfg.SourcesPath, "context", "failed to initialize source repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Source Service
	do.Provide(injector, func(i do.Injector) (*sourceService.Service, error) {
		repo := do.MustInvoke[sourceRepo.Repository](i)
		return sourceService.New(repo, do.MustInvoke[*slog.Logger](i)), nil
	})

	// Register Feed Registry
	do.Provide(injector, func(i do.Injector) (*sourceDomain.Registry, error) {
		svc, err := do.Invoke[*sourceService.Service](i)
		if err != nil {
			return nil, err
		}
		return svc.LoadRegistry()
	})

	// Register Site Repository
	do.Provide(injector, func(i do.Injector) (siteRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := siteRepo.NewFileStorage(cfg.SitePath)
		if err != nil {
			return nil, oops.With("site_path", cfg.SitePath, "context", "failed to initialize site repository").Wrap(err)
		}
		return repo, nil
	})

	// Register Site Configuration
	do.Provide(injector, func(i do.Injector) (siteDomain.Config, error) {
		repo, err := do.Invoke[siteRepo.Repository](i)
		if err != nil {
			return siteDomain.Config{}, err
		}
		settings, err := repo.LoadSettings()
		if err != nil {
			return siteDomain.Config{}, err
		}
		site, err := siteDomain.NewConfig(settings)
		if err != nil {
			return siteDomain.Config{}, err
		}
		do.MustInvoke[*slog.Logger](i).Info("Site configuration resolved",
			"site_url", site.Identity.SiteURL,
			"feed_fetch_concurrency", site.Tunables.FeedFetchConcurrency,
		)
		return site, nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		site, err := do.Invoke[siteDomain.Config](i)
		if err != nil {
			return nil, err
		}
		return feedService.New(site), nil
	})

	// Register HTTP Server
	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		registry, err := do.Invoke[*sourceDomain.Registry](i)
		if err != nil {
			return nil, err
		}
		site, err := do.Invoke[siteDomain.Config](i)
		if err != nil {
			return nil, err
		}
		server := httpServer.New(cfg, registry, site)
		server.SetLogger(do.MustInvoke[*slog.Logger](i))
		return server, nil
	})

	return injector
}

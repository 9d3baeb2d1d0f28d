package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/samber/do/v2"
	"github.com/univac-1/ai-info-rss-feed/internal/di"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/config"
	"github.com/univac-1/ai-info-rss-feed/internal/shared/logging"
	"github.com/urfave/cli/v2"
)

// runtime carries what the Before hook builds to every command action.
type runtime struct {
	cfg      *config.Config
	logger   *slog.Logger
	injector do.Injector
	logFile  *os.File
}

// NewApp builds the aifeed command line. Command output goes to stdout; logs and
// errors go to stderr.
func NewApp(stdout, stderr io.Writer) *cli.App {
	rt := &runtime{}

	return &cli.App{
		Name:  "aifeed",
		Usage: "Feed registry and site configuration for the AI news aggregator",
		Description: `Loads and validates the list of feed sources the aggregation pipeline
polls, together with the site configuration it publishes under.

Settings can generally be set via environment variables, e.g.:

--sources => AIFEED_SOURCES_PATH=feeds.toml
--site => AIFEED_SITE_PATH=site.yaml
--log-level => AIFEED_LOG_LEVEL=debug
`,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "application config file (yaml, json or toml)",
				EnvVars: []string{"AIFEED_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "sources",
				Usage: "feed registry file; the built-in list is used when empty",
			},
			&cli.StringFlag{
				Name:  "site",
				Usage: "site settings file overriding the built-in defaults",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
		},
		Before: rt.setup,
		After:  rt.teardown,
		Commands: []*cli.Command{
			validateCmd(rt),
			sourcesCmd(rt),
			siteCmd(rt),
			channelCmd(rt),
			opmlCmd(rt),
			serveCmd(rt),
		},
		// main decides the exit code
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (rt *runtime) setup(cCtx *cli.Context) error {
	cfg, err := config.Load(cCtx.String("config"))
	if err != nil {
		return err
	}

	if cCtx.IsSet("sources") {
		cfg.SourcesPath = cCtx.String("sources")
	}
	if cCtx.IsSet("site") {
		cfg.SitePath = cCtx.String("site")
	}
	if cCtx.IsSet("log-level") {
		cfg.LogLevel = cCtx.String("log-level")
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	logFile, err := logging.OpenLogFile(cfg.LogFile)
	if err != nil {
		return err
	}

	var jsonSink io.Writer
	if logFile != nil {
		jsonSink = logFile
		rt.logFile = logFile
	}

	rt.cfg = cfg
	rt.logger = logging.New(cCtx.App.ErrWriter, level, jsonSink)
	slog.SetDefault(rt.logger)
	rt.injector = di.Setup(cfg, rt.logger)

	rt.logger.Debug("Configuration loaded",
		"sources_path", cfg.SourcesPath,
		"site_path", cfg.SitePath,
		"app_env", cfg.AppEnv,
	)
	return nil
}

func (rt *runtime) teardown(*cli.Context) error {
	if rt.logFile != nil {
		return rt.logFile.Close()
	}
	return nil
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/samber/oops"
	feedService "github.com/univac-1/ai-info-rss-feed/internal/modules/feed/service"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
	sourceDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
	sourceService "github.com/univac-1/ai-info-rss-feed/internal/modules/source/service"
	httpServer "github.com/univac-1/ai-info-rss-feed/internal/transport/http"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func validateCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Load the feed registry and site configuration and report every problem",
		Action: func(cCtx *cli.Context) error {
			registry, regErr := do.Invoke[*sourceDomain.Registry](rt.injector)
			site, siteErr := do.Invoke[siteDomain.Config](rt.injector)
			if err := errors.Join(regErr, siteErr); err != nil {
				return err
			}

			ok := color.New(color.FgGreen)
			w := cCtx.App.Writer
			ok.Fprintf(w, "✓ feed registry: %d sources in %d categories\n", registry.Len(), len(registry.Categories()))
			ok.Fprintf(w, "✓ site configuration: %s\n", site.Identity.SiteURL)
			return nil
		},
	}
}

func sourcesCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "sources",
		Usage: "List the feed registry in polling order",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the sources as a JSON array",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "only list sources of this category",
			},
		},
		Action: func(cCtx *cli.Context) error {
			registry, err := do.Invoke[*sourceDomain.Registry](rt.injector)
			if err != nil {
				return err
			}

			sources := registry.Sources()
			if category := cCtx.String("category"); category != "" {
				sources = registry.ByCategory(category)
			}

			if cCtx.Bool("json") {
				return printJSON(cCtx, sources)
			}

			table := newTable(cCtx.App.Writer)
			table.Header([]string{"Label", "Category", "URL"})
			if err := table.Bulk(lo.Map(sources, func(s sourceDomain.FeedSource, _ int) []string {
				return []string{s.Label, lo.Ternary(s.Category == "", "-", s.Category), s.URL}
			})); err != nil {
				return err
			}
			return table.Render()
		},
	}
}

func siteCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "site",
		Usage: "Print the resolved site configuration as JSON",
		Action: func(cCtx *cli.Context) error {
			site, err := do.Invoke[siteDomain.Config](rt.injector)
			if err != nil {
				return err
			}
			return printJSON(cCtx, site)
		},
	}
}

func channelCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "channel",
		Usage: "Render the item-less channel header of an output feed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "atom, rss or json",
				Value: siteDomain.FeedFormatAtom.String(),
			},
		},
		Action: func(cCtx *cli.Context) error {
			format, err := siteDomain.ParseFeedFormat(cCtx.String("format"))
			if err != nil {
				return err
			}

			svc, err := do.Invoke[*feedService.Service](rt.injector)
			if err != nil {
				return err
			}

			out, err := svc.Render(svc.Channel(time.Now()), format)
			if err != nil {
				return err
			}

			rt.logger.Debug("Channel rendered", "format", format, "self", svc.SelfLink(format))
			_, err = fmt.Fprintln(cCtx.App.Writer, out)
			return err
		},
	}
}

func opmlCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "opml",
		Usage: "Export the feed registry as OPML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to this file instead of stdout",
			},
		},
		Action: func(cCtx *cli.Context) error {
			registry, err := do.Invoke[*sourceDomain.Registry](rt.injector)
			if err != nil {
				return err
			}
			site, err := do.Invoke[siteDomain.Config](rt.injector)
			if err != nil {
				return err
			}

			opml, err := sourceService.ExportOPML(registry, site, time.Now())
			if err != nil {
				return err
			}

			output := cCtx.String("output")
			if output == "" {
				_, err = cCtx.App.Writer.Write(opml)
				return err
			}

			if err := os.WriteFile(output, opml, 0o644); err != nil {
				return oops.With("output", output).Wrap(err)
			}
			rt.logger.Info("OPML written", "output", output, "sources", registry.Len())
			return nil
		},
	}
}

func serveCmd(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the registry and site configuration over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "listen port, overrides http_port",
			},
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.IsSet("port") {
				rt.cfg.HTTPPort = cCtx.String("port")
			}

			server, err := do.Invoke[*httpServer.Server](rt.injector)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			rt.logger.Info("Shutting down inspection server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return oops.With("context", "shutdown").Wrap(err)
			}
			if err := <-errCh; err != nil {
				return err
			}
			rt.logger.Info("Inspection server stopped")
			return nil
		},
	}
}

func printJSON(cCtx *cli.Context, v any) error {
	enc := json.NewEncoder(cCtx.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

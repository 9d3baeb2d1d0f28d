package service

import (
	"encoding/json"
	"time"

	"github.com/gorilla/feeds"
	"github.com/samber/oops"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
)

const (
	ellipsis = "..."
	rssDocs  = "https://validator.w3.org/feed/docs/rss2.html"
)

// Service exposes the site configuration in the shape the aggregation pipeline
// consumes when it assembles output feeds.
type Service struct {
	site siteDomain.Config
}

// New creates a new feed service
func New(site siteDomain.Config) *Service {
	return &Service{site: site}
}

// Channel returns an item-less feed carrying the site identity. The pipeline
// appends items and serialises it with Render. The author is left unset since
// RSS and Atom require an email the site does not have.
func (s *Service) Channel(now time.Time) *feeds.Feed {
	id := s.site.Identity

	return &feeds.Feed{
		Id:          id.SiteURL,
		Title:       id.SiteTitle,
		Link:        &feeds.Link{Href: id.SiteURL},
		Description: id.SiteDescription,
		Copyright:   id.FeedCopyright,
		Image: &feeds.Image{
			Url:   id.ImageURL,
			Title: id.SiteTitle,
			Link:  id.SiteURL,
		},
		Created: now,
		Updated: now,
	}
}

// atomChannel adds the elements gorilla/feeds does not model on an Atom feed.
type atomChannel struct {
	*feeds.AtomFeed
	Generator string `xml:"generator,omitempty"`
	Self      *feeds.AtomLink
}

func (a *atomChannel) FeedXml() interface{} {
	return a
}

// Render serialises feed in format, completing it with the site metadata each
// format carries: language, generator, icons and the self link.
func (s *Service) Render(feed *feeds.Feed, format siteDomain.FeedFormat) (string, error) {
	id := s.site.Identity

	switch format {
	case siteDomain.FeedFormatAtom:
		atom := (&feeds.Atom{Feed: feed}).AtomFeed()
		atom.Icon = id.FaviconURL
		atom.Logo = id.ImageURL
		return feeds.ToXML(&atomChannel{
			AtomFeed:  atom,
			Generator: id.FeedGenerator,
			Self: &feeds.AtomLink{
				Href: s.SelfLink(format),
				Rel:  "self",
				Type: "application/atom+xml",
			},
		})

	case siteDomain.FeedFormatRss:
		rss := (&feeds.Rss{Feed: feed}).RssFeed()
		rss.Language = id.FeedLanguage
		rss.Generator = id.FeedGenerator
		rss.Docs = rssDocs
		return feeds.ToXML(rss)

	case siteDomain.FeedFormatJson:
		jsonFeed := (&feeds.JSON{Feed: feed}).JSONFeed()
		jsonFeed.Language = id.FeedLanguage
		jsonFeed.FeedUrl = s.SelfLink(format)
		jsonFeed.Icon = id.ImageURL
		jsonFeed.Favicon = id.FaviconURL
		jsonFeed.Authors = []*feeds.JSONAuthor{{
			Name: s.site.Author.Name,
			Url:  s.site.Author.URL,
		}}
		data, err := json.MarshalIndent(jsonFeed, "", "  ")
		if err != nil {
			return "", oops.With("format", format).Wrap(err)
		}
		return string(data), nil

	default:
		return "", oops.With("format", format).Wrap(siteDomain.ErrInvalidFeedFormat)
	}
}

// SelfLink returns the published URL of format.
func (s *Service) SelfLink(format siteDomain.FeedFormat) string {
	return s.site.FeedURLs.For(format)
}

// AggregateSince is the oldest publication time kept in an aggregation run at now.
func (s *Service) AggregateSince(now time.Time) time.Time {
	return now.Add(-s.site.Tunables.AggregateWindow())
}

func (s *Service) TruncateDescription(text string) string {
	return truncate(text, s.site.Tunables.MaxFeedDescriptionLength)
}

func (s *Service) TruncateContent(text string) string {
	return truncate(text, s.site.Tunables.MaxFeedContentLength)
}

// truncate keeps at most maxLen characters and marks the cut with an ellipsis.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + ellipsis
}

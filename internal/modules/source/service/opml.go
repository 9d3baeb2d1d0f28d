package service

import (
	"encoding/xml"
	"time"

	"github.com/samber/lo"
	"github.com/samber/oops"
	siteDomain "github.com/univac-1/ai-info-rss-feed/internal/modules/site/domain"
	"github.com/univac-1/ai-info-rss-feed/internal/modules/source/domain"
)

const opmlVersion = "2.0"

type opmlDocument struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    opmlHead `xml:"head"`
	Body    opmlBody `xml:"body"`
}

type opmlBody struct {
	Outlines []opmlEntry `xml:"outline"`
}

type opmlHead struct {
	Title       string `xml:"title"`
	DateCreated string `xml:"dateCreated"`
	OwnerName   string `xml:"ownerName,omitempty"`
	OwnerID     string `xml:"ownerId,omitempty"`
	Docs        string `xml:"docs"`
}

type opmlEntry struct {
	Text     string      `xml:"text,attr"`
	Title    string      `xml:"title,attr,omitempty"`
	Type     string      `xml:"type,attr,omitempty"`
	XMLURL   string      `xml:"xmlUrl,attr,omitempty"`
	Children []opmlEntry `xml:"outline,omitempty"`
}

// ExportOPML renders the registry as an OPML 2.0 subscription list. Categorised
// sources are nested under one outline per category; uncategorised sources follow
// at the top level. Registry order is kept inside every group.
func ExportOPML(registry *domain.Registry, site siteDomain.Config, now time.Time) ([]byte, error) {
	toEntry := func(s domain.FeedSource, _ int) opmlEntry {
		return opmlEntry{Text: s.Label, Title: s.Label, Type: "rss", XMLURL: s.URL}
	}

	body := lo.Map(registry.Categories(), func(category string, _ int) opmlEntry {
		return opmlEntry{
			Text:     category,
			Title:    category,
			Children: lo.Map(registry.ByCategory(category), toEntry),
		}
	})
	body = append(body, lo.Map(registry.ByCategory(""), toEntry)...)

	doc := opmlDocument{
		Version: opmlVersion,
		Head: opmlHead{
			Title:       site.Identity.SiteTitle,
			DateCreated: now.UTC().Format(time.RFC1123Z),
			OwnerName:   site.Author.Name,
			OwnerID:     site.Author.URL,
			Docs:        "http://opml.org/spec2.opml",
		},
		Body: opmlBody{Outlines: body},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, oops.With("context", "failed to encode OPML").Wrap(err)
	}

	return append([]byte(xml.Header), append(out, '\n')...), nil
}

//go:generate go run github.com/abice/go-enum --file=$GOFILE --names --nocase

package domain

// FeedFormat is an output format published by the aggregation pipeline
// ENUM(atom,rss,json)
type FeedFormat string

var feedFileNames = map[FeedFormat]string{
	FeedFormatAtom: "atom.xml",
	FeedFormatRss:  "rss.xml",
	FeedFormatJson: "feed.json",
}

// FileName is the artifact name under the site's feeds/ directory.
func (x FeedFormat) FileName() string {
	return feedFileNames[x]
}

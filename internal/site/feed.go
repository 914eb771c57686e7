package site

import (
	"bytes"
	"encoding/xml"
	"sort"
	"strings"
	"time"

	"github.com/arendjr/phebe/internal/content"
)

// FeedContentType is sent with the RSS document.
const FeedContentType = "application/rss+xml; charset=UTF-8"

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title   string  `xml:"title"`
	Link    string  `xml:"link"`
	GUID    rssGUID `xml:"guid"`
	PubDate string  `xml:"pubDate"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// renderFeed lists dated articles published at or before now, newest first.
func renderFeed(opts Options, articles []content.Article, now time.Time) ([]byte, error) {
	base := strings.TrimSuffix(opts.URL, "/")

	var items []content.Article
	for _, a := range articles {
		if a.Published.IsZero() || a.Published.After(now) {
			continue
		}
		items = append(items, a)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})

	doc := rss{
		Version: "2.0",
		Channel: rssChannel{
			Title:       opts.Title,
			Link:        base + "/",
			Description: opts.Description,
		},
	}
	for _, a := range items {
		link := a.Link
		if a.Local() {
			link = base + a.Href
		}
		doc.Channel.Items = append(doc.Channel.Items, rssItem{
			Title:   a.Title,
			Link:    link,
			GUID:    rssGUID{Value: link, IsPermaLink: true},
			PubDate: a.Published.Format(time.RFC1123Z),
		})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

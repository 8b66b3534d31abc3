// Package wxr parses WordPress eXtended RSS (WXR 1.2) exports into the
// bareblog document shape.
package wxr

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/eringen/bareblog"
)

// Export holds the usable content of one WXR file.
type Export struct {
	Posts []bareblog.Post
	Pages map[string]bareblog.Page
}

type wxrFile struct {
	Channel struct {
		Items []wxrItem `xml:"item"`
	} `xml:"channel"`
}

type wxrItem struct {
	Title      string        `xml:"title"`
	Creator    string        `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Content    string        `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	Excerpt    string        `xml:"http://wordpress.org/export/1.2/excerpt/ encoded"`
	PostID     string        `xml:"http://wordpress.org/export/1.2/ post_id"`
	PostName   string        `xml:"http://wordpress.org/export/1.2/ post_name"`
	PostType   string        `xml:"http://wordpress.org/export/1.2/ post_type"`
	PostDate   string        `xml:"http://wordpress.org/export/1.2/ post_date"`
	Status     string        `xml:"http://wordpress.org/export/1.2/ status"`
	Categories []wxrCategory `xml:"category"`
}

type wxrCategory struct {
	Domain string `xml:"domain,attr"`
	Label  string `xml:",chardata"`
}

// ParseFile reads and parses the WXR export at path.
func ParseFile(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wxr: open export: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a WXR document. Items of type "post" and "page" are kept;
// attachments, menus, and every other item type are ignored.
func Parse(r io.Reader) (*Export, error) {
	var file wxrFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("wxr: decode export: %w", err)
	}

	ex := &Export{Pages: map[string]bareblog.Page{}}
	for _, item := range file.Channel.Items {
		switch item.PostType {
		case "post":
			ex.Posts = append(ex.Posts, toPost(item))
		case "page":
			// Pages without a slug have nowhere to live; skip them.
			slug := strings.TrimSpace(item.PostName)
			if slug == "" {
				continue
			}
			ex.Pages[slug] = toPage(item, slug)
		}
	}

	// Newest first by real timestamp, the same ordering the repository
	// applies when listing.
	sort.SliceStable(ex.Posts, func(i, j int) bool {
		return bareblog.ParseDate(ex.Posts[i].Date).After(bareblog.ParseDate(ex.Posts[j].Date))
	})
	return ex, nil
}

func toPost(item wxrItem) bareblog.Post {
	id, _ := strconv.Atoi(strings.TrimSpace(item.PostID))

	slug := strings.TrimSpace(item.PostName)
	if slug == "" {
		slug = bareblog.Slugify(item.Title)
	}

	status := strings.TrimSpace(item.Status)
	if status == "" {
		status = bareblog.StatusPublish
	}

	date := bareblog.NowISO()
	if raw := strings.TrimSpace(item.PostDate); raw != "" {
		date = toISO(raw)
	}

	var tags, categories []string
	for _, cat := range item.Categories {
		label := strings.TrimSpace(cat.Label)
		if label == "" {
			continue
		}
		switch cat.Domain {
		case "post_tag":
			tags = append(tags, label)
		case "category":
			categories = append(categories, label)
		}
	}

	return bareblog.Post{
		ID:          id,
		Slug:        slug,
		Title:       item.Title,
		Date:        date,
		Modified:    date,
		Status:      status,
		Tags:        tags,
		Categories:  categories,
		ContentHTML: item.Content,
		Excerpt:     item.Excerpt,
		Author:      item.Creator,
	}
}

func toPage(item wxrItem, slug string) bareblog.Page {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = bareblog.TitleFromSlug(slug)
	}
	return bareblog.Page{
		Title:       title,
		Slug:        slug,
		ContentHTML: item.Content,
		Updated:     bareblog.NowISO(),
	}
}

// exportDateLayouts are the timestamp shapes WordPress exports carry,
// tried in order.
var exportDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05-0700",
	bareblog.DateFormat,
	time.RFC3339,
}

// toISO converts an export timestamp to the native layout. Zoned inputs
// keep their wall-clock reading; unparseable input becomes the current
// time rather than failing the whole import.
func toISO(raw string) string {
	for _, layout := range exportDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(bareblog.DateFormat)
		}
	}
	return bareblog.NowISO()
}

// BuildDocument wraps an export as a complete data file: stock nav links
// and an empty main title, the starting state of a freshly imported site.
func BuildDocument(ex *Export) bareblog.Document {
	return bareblog.Document{
		Posts:    ex.Posts,
		Pages:    ex.Pages,
		Settings: bareblog.Settings{NavLinks: bareblog.DefaultNavLinks(), MainTitle: ""},
	}
}

// Merge adds the export's pages to an existing document, keeping whatever
// is already there. Posts and settings are never touched. Returns how many
// pages were added.
func Merge(doc *bareblog.Document, ex *Export) int {
	if doc.Pages == nil {
		doc.Pages = map[string]bareblog.Page{}
	}
	added := 0
	for slug, page := range ex.Pages {
		if _, ok := doc.Pages[slug]; !ok {
			doc.Pages[slug] = page
			added++
		}
	}
	return added
}

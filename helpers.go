package bareblog

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/gosimple/slug"
)

// DateFormat is the canonical timestamp layout used in the data file:
// local-naive ISO-8601 with second precision.
const DateFormat = "2006-01-02T15:04:05"

// dateLayouts are accepted on input, tried in order. Anything else is
// treated as an unknown date.
var dateLayouts = []string{
	DateFormat,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Slugify converts a title to a URL-safe slug, transliterating non-ASCII
// letters rather than dropping them.
func Slugify(s string) string {
	return slug.Make(s)
}

// ParseDate parses a stored timestamp. It returns the zero time when the
// string is empty or matches no known layout, which sorts after every real
// date in newest-first order.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDate renders a stored timestamp for display, or "" when the date is
// missing or unparseable.
func FormatDate(s string) string {
	t := ParseDate(s)
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// NowISO returns the current UTC time in the canonical data-file layout.
func NowISO() string {
	return time.Now().UTC().Format(DateFormat)
}

// BuildURL joins a base URL with path segments. No trailing slash is added;
// routes are registered without one.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// SplitCSV splits comma-separated editor input into trimmed values,
// dropping empties. Duplicates are kept as typed.
func SplitCSV(raw string) []string {
	return FilterEmpty(strings.Split(raw, ","))
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// TitleFromSlug derives a human title from a slug: hyphens become spaces
// and each word is capitalized.
func TitleFromSlug(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "-", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// JoinTags joins tags with ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema.
func WebsiteJsonLD(v View) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        v.SiteTitle,
		"url":         BuildURL(v.BaseURL),
		"description": v.Description,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post Post, v View) string {
	postURL := BuildURL(v.BaseURL, post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Excerpt,
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if post.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  post.Author,
		}
	}
	if v.SiteTitle != "" {
		data["publisher"] = map[string]string{
			"@type": "Organization",
			"name":  v.SiteTitle,
		}
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

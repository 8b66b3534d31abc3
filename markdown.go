package bareblog

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md is the shared converter. WithUnsafe keeps raw HTML in post bodies;
// imported content is full of it and authors are trusted.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// RenderMarkdown converts Markdown source to HTML.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// BuildExcerpt derives a plain-text teaser from an HTML body: tags are
// stripped, whitespace trimmed, and the text cut to limit runes with an
// ellipsis appended only when something was actually cut.
func BuildExcerpt(htmlBody string, limit int) string {
	text := strings.TrimSpace(tagPattern.ReplaceAllString(htmlBody, ""))
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return strings.TrimRight(string(runes[:limit]), " \t\n\r") + "…"
}

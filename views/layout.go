package views

import (
	"html"
	"strings"

	"github.com/eringen/bareblog"
)

func esc(s string) string { return html.EscapeString(s) }

// openLayout writes everything before the page content: head, site header
// with the configured nav links, and any queued flash messages.
func openLayout(b *strings.Builder, v bareblog.View, title string) {
	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
	b.WriteString("<meta charset=\"utf-8\"/>")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>")
	b.WriteString("<title>" + esc(title) + "</title>")
	if v.Description != "" {
		b.WriteString("<meta name=\"description\" content=\"" + esc(v.Description) + "\"/>")
	}
	b.WriteString("<link rel=\"stylesheet\" href=\"/public/style.css\"/>")
	b.WriteString("<link rel=\"alternate\" type=\"application/rss+xml\" title=\"" + esc(v.SiteTitle) + "\" href=\"/feed.xml\"/>")
	b.WriteString("</head><body>")

	b.WriteString("<header class=\"site\"><h1><a href=\"/\">" + esc(v.MainTitle) + "</a></h1><nav>")
	for _, l := range v.NavLinks {
		if l.URL == "" {
			continue
		}
		attrs := " target=\"" + esc(l.Target) + "\""
		if l.Target == "_blank" {
			attrs += " rel=\"noopener\""
		}
		b.WriteString("<a href=\"" + esc(l.URL) + "\"" + attrs + ">" + esc(l.Label) + "</a>")
	}
	if v.Identity.LoggedIn() {
		b.WriteString("<a href=\"/admin/posts\">Admin</a><a href=\"/logout\">Log out</a>")
	}
	b.WriteString("</nav></header>")

	for _, f := range v.Flashes {
		b.WriteString("<div class=\"flash " + esc(f.Category) + "\">" + esc(f.Message) + "</div>")
	}
	b.WriteString("<main>")
}

func closeLayout(b *strings.Builder, v bareblog.View) {
	b.WriteString("</main><footer class=\"site\"><p>")
	b.WriteString(esc(v.SiteTitle) + " · <a href=\"/feed.xml\">RSS</a>")
	b.WriteString("</p></footer></body></html>")
}

// csrfField renders the hidden input every mutating form must carry.
func csrfField(v bareblog.View) string {
	return "<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(v.CSRF) + "\"/>"
}

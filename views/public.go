package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/eringen/bareblog"
)

// Home renders the post stream. Drafts only reach it for the logged-in
// admin; they get a badge so the two states are distinguishable.
func Home(v bareblog.View, posts []bareblog.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, v.SiteTitle)
		if len(posts) == 0 {
			b.WriteString("<p>Nothing here yet.</p>")
		}
		for _, p := range posts {
			b.WriteString("<article class=\"post-summary\"><h2><a href=\"/" + esc(p.Slug) + "\">" + esc(p.Title) + "</a>")
			if !p.Published() {
				b.WriteString("<span class=\"draft-badge\">draft</span>")
			}
			b.WriteString("</h2>")
			if d := bareblog.FormatDate(p.Date); d != "" {
				b.WriteString("<p class=\"post-meta\">" + esc(d) + "</p>")
			}
			if p.Excerpt != "" {
				b.WriteString("<p>" + esc(p.Excerpt) + "</p>")
			}
			b.WriteString("</article>")
		}
		b.WriteString("<script type=\"application/ld+json\">" + bareblog.WebsiteJsonLD(v) + "</script>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Post renders a single post. The stored HTML body is written as-is; it
// was produced by the markdown renderer or imported verbatim.
func Post(v bareblog.View, post bareblog.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, post.Title+" · "+v.SiteTitle)
		b.WriteString("<article><h1>" + esc(post.Title))
		if !post.Published() {
			b.WriteString("<span class=\"draft-badge\">draft</span>")
		}
		b.WriteString("</h1>")

		b.WriteString("<p class=\"post-meta\">")
		if d := bareblog.FormatDate(post.Date); d != "" {
			b.WriteString(esc(d))
		}
		if post.Author != "" {
			b.WriteString(" · " + esc(post.Author))
		}
		b.WriteString("</p>")

		b.WriteString(post.ContentHTML)

		if len(post.Tags) > 0 {
			b.WriteString("<p class=\"post-meta post-tags\">Tagged: " + esc(bareblog.JoinTags(post.Tags)) + "</p>")
		}
		if len(post.Categories) > 0 {
			b.WriteString("<p class=\"post-meta\">Filed under: " + esc(bareblog.JoinTags(post.Categories)) + "</p>")
		}
		b.WriteString("</article>")
		b.WriteString("<script type=\"application/ld+json\">" + bareblog.BlogPostingJsonLD(post, v) + "</script>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Page renders standalone pages such as About.
func Page(v bareblog.View, page bareblog.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, page.Title+" · "+v.SiteTitle)
		b.WriteString("<article><h1>" + esc(page.Title) + "</h1>")
		b.WriteString(page.ContentHTML)
		b.WriteString("</article>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func NotFound(v bareblog.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, "Not found · "+v.SiteTitle)
		b.WriteString("<h1>404</h1><p>That page does not exist. <a href=\"/\">Back home</a>.</p>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func ServerError(v bareblog.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, "Something broke · "+v.SiteTitle)
		b.WriteString("<h1>500</h1><p>Something broke on our end. Try again in a moment.</p>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

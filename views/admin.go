package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/eringen/bareblog"
)

func AdminLogin(v bareblog.View, next string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, "Log in · "+v.SiteTitle)
		b.WriteString("<h1>Log in</h1>")
		b.WriteString("<form class=\"admin\" method=\"post\" action=\"/admin\">")
		b.WriteString(csrfField(v))
		b.WriteString("<input type=\"hidden\" name=\"next\" value=\"" + esc(next) + "\"/>")
		b.WriteString("<label for=\"username\">Email</label>")
		b.WriteString("<input type=\"text\" id=\"username\" name=\"username\" autocomplete=\"username\"/>")
		b.WriteString("<label for=\"password\">Password</label>")
		b.WriteString("<input type=\"password\" id=\"password\" name=\"password\" autocomplete=\"current-password\"/>")
		b.WriteString("<button type=\"submit\">Log in</button>")
		b.WriteString("</form>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AdminPosts lists every post, drafts included, with edit links.
func AdminPosts(v bareblog.View, posts []bareblog.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, "Posts · "+v.SiteTitle)
		b.WriteString("<h1>Posts</h1>")
		b.WriteString("<p><a href=\"/admin/posts/new\">New post</a> · <a href=\"/admin/settings\">Settings</a> · <a href=\"/admin/images\">Images</a></p>")
		if len(posts) == 0 {
			b.WriteString("<p>No posts yet.</p>")
		} else {
			b.WriteString("<ul class=\"post-list\">")
			for _, p := range posts {
				b.WriteString("<li><a href=\"/admin/posts/" + esc(p.Slug) + "/edit\">" + esc(p.Title) + "</a>")
				b.WriteString("<span class=\"post-meta\">" + esc(p.Status) + " · " + esc(bareblog.FormatDate(p.Date)) + "</span></li>")
			}
			b.WriteString("</ul>")
		}
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AdminEdit is the shared create/edit form. The server re-derives the slug
// on save, so the field is a suggestion, not a promise.
func AdminEdit(v bareblog.View, post bareblog.Post, isNew bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/admin/posts/" + post.Slug + "/edit"
		heading := "Edit post"
		if isNew {
			action = "/admin/posts/new"
			heading = "New post"
		}

		var b strings.Builder
		openLayout(&b, v, heading+" · "+v.SiteTitle)
		b.WriteString("<h1>" + esc(heading) + "</h1>")
		b.WriteString("<p><a href=\"/admin/posts\">Back to posts</a></p>")
		b.WriteString("<form class=\"admin\" method=\"post\" action=\"" + esc(action) + "\">")
		b.WriteString(csrfField(v))

		b.WriteString("<label for=\"title\">Title</label>")
		b.WriteString("<input type=\"text\" id=\"title\" name=\"title\" value=\"" + esc(post.Title) + "\"/>")

		b.WriteString("<label for=\"slug\">Slug</label>")
		b.WriteString("<input type=\"text\" id=\"slug\" name=\"slug\" value=\"" + esc(post.Slug) + "\"/>")

		b.WriteString("<label for=\"date\">Date</label>")
		b.WriteString("<input type=\"text\" id=\"date\" name=\"date\" value=\"" + esc(post.Date) + "\" placeholder=\"2024-01-31T12:00:00\"/>")

		b.WriteString("<label for=\"status\">Status</label>")
		b.WriteString("<select id=\"status\" name=\"status\">")
		for _, s := range []string{bareblog.StatusPublish, bareblog.StatusDraft} {
			sel := ""
			if post.Status == s {
				sel = " selected"
			}
			b.WriteString("<option value=\"" + s + "\"" + sel + ">" + s + "</option>")
		}
		b.WriteString("</select>")

		b.WriteString("<label for=\"tags\">Tags (comma-separated)</label>")
		b.WriteString("<input type=\"text\" id=\"tags\" name=\"tags\" value=\"" + esc(bareblog.JoinTags(post.Tags)) + "\"/>")

		b.WriteString("<label for=\"categories\">Categories (comma-separated)</label>")
		b.WriteString("<input type=\"text\" id=\"categories\" name=\"categories\" value=\"" + esc(bareblog.JoinTags(post.Categories)) + "\"/>")

		b.WriteString("<label for=\"content_markdown\">Body (Markdown)</label>")
		b.WriteString("<textarea id=\"content_markdown\" name=\"content_markdown\">" + esc(post.ContentMarkdown) + "</textarea>")
		if post.ContentMarkdown == "" && post.ContentHTML != "" {
			b.WriteString("<p class=\"post-meta\">This post has an imported HTML body; leave the Markdown field empty to keep it.</p>")
		}

		b.WriteString("<label for=\"excerpt\">Excerpt (optional)</label>")
		b.WriteString("<textarea id=\"excerpt\" name=\"excerpt\">" + esc(post.Excerpt) + "</textarea>")

		b.WriteString("<button type=\"submit\">Save</button>")
		b.WriteString("</form>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func AdminSettings(v bareblog.View, about bareblog.Page, navLinksText, mainTitle string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, "Settings · "+v.SiteTitle)
		b.WriteString("<h1>Settings</h1>")
		b.WriteString("<p><a href=\"/admin/posts\">Back to posts</a></p>")
		b.WriteString("<form class=\"admin\" method=\"post\" action=\"/admin/settings\">")
		b.WriteString(csrfField(v))

		b.WriteString("<label for=\"main_title\">Main title</label>")
		b.WriteString("<input type=\"text\" id=\"main_title\" name=\"main_title\" value=\"" + esc(mainTitle) + "\"/>")

		b.WriteString("<label for=\"nav_links\">Nav links (one per line: label|url|target)</label>")
		b.WriteString("<textarea id=\"nav_links\" name=\"nav_links\">" + esc(navLinksText) + "</textarea>")

		b.WriteString("<label for=\"about_markdown\">About page (Markdown)</label>")
		b.WriteString("<textarea id=\"about_markdown\" name=\"about_markdown\">" + esc(about.ContentMarkdown) + "</textarea>")

		b.WriteString("<button type=\"submit\">Save settings</button>")
		b.WriteString("</form>")
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func AdminImages(v bareblog.View, images []bareblog.Image) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		openLayout(&b, v, "Images · "+v.SiteTitle)
		b.WriteString("<h1>Images</h1>")
		b.WriteString("<p><a href=\"/admin/posts\">Back to posts</a></p>")

		b.WriteString("<form class=\"admin\" method=\"post\" action=\"/admin/images/upload\" enctype=\"multipart/form-data\">")
		b.WriteString(csrfField(v))
		b.WriteString("<label for=\"image\">Upload image (resized to 800px wide, saved as JPEG)</label>")
		b.WriteString("<input type=\"file\" id=\"image\" name=\"image\" accept=\"image/*\"/>")
		b.WriteString("<button type=\"submit\">Upload</button>")
		b.WriteString("</form>")

		if len(images) == 0 {
			b.WriteString("<p>No uploads yet.</p>")
		} else {
			b.WriteString("<ul class=\"post-list\">")
			for _, img := range images {
				b.WriteString("<li><a href=\"" + esc(img.URL) + "\">" + esc(img.Filename) + "</a>")
				b.WriteString("<span class=\"post-meta\">" + fmtSize(img.Size) + "</span>")
				b.WriteString("<form method=\"post\" action=\"/admin/images/" + esc(img.Filename) + "/delete\">")
				b.WriteString(csrfField(v))
				b.WriteString("<button type=\"submit\">Delete</button></form></li>")
			}
			b.WriteString("</ul>")
		}
		closeLayout(&b, v)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func fmtSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.0f KB", float64(n)/1024)
}

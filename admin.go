package bareblog

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleAdminLoginForm(c echo.Context) error {
	if CurrentIdentity(c).LoggedIn() {
		return c.Redirect(http.StatusSeeOther, "/admin/posts")
	}
	v, err := a.newView(c)
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminLogin(v, c.QueryParam("next")))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}

	user := c.FormValue("username")
	pass := c.FormValue("password")
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.Config.AdminUser))
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword))
	if userOK&passOK == 1 {
		if err := setSessionUser(c, a.Config.AdminUser); err != nil {
			return err
		}
		addFlash(c, "success", "Logged in")
		return c.Redirect(http.StatusSeeOther, safeNext(c.FormValue("next")))
	}

	a.loginLimiter.Record(c.RealIP())
	addFlash(c, "error", "Invalid credentials")
	target := "/admin"
	if next := c.FormValue("next"); next != "" {
		target += "?next=" + url.QueryEscape(next)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// safeNext keeps the post-login redirect on this site.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/admin/posts"
}

func (a *App) handleLogout(c echo.Context) error {
	if err := clearSession(c); err != nil {
		return err
	}
	addFlash(c, "success", "Logged out")
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleAdminPosts(c echo.Context) error {
	v, err := a.newView(c)
	if err != nil {
		return err
	}
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminPosts(v, posts))
}

func (a *App) handleAdminNewPostForm(c echo.Context) error {
	v, err := a.newView(c)
	if err != nil {
		return err
	}
	blank := Post{Date: NowISO(), Status: StatusPublish}
	return Render(c, a.Views.AdminEdit(v, blank, true))
}

func (a *App) handleAdminNewPost(c echo.Context) error {
	return a.savePostForm(c, nil)
}

func (a *App) handleAdminEditPostForm(c echo.Context) error {
	v, err := a.newView(c)
	if err != nil {
		return err
	}
	post, err := a.Store.FindPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(v))
		}
		return err
	}
	return Render(c, a.Views.AdminEdit(v, post, false))
}

func (a *App) handleAdminEditPost(c echo.Context) error {
	post, err := a.Store.FindPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			v, verr := a.newView(c)
			if verr != nil {
				return verr
			}
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(v))
		}
		return err
	}
	return a.savePostForm(c, &post)
}

// savePostForm funnels both create and edit through the repository.
// Validation failures flash and bounce back to the form; the file is
// untouched in that case.
func (a *App) savePostForm(c echo.Context, existing *Post) error {
	form := PostForm{
		Title:           c.FormValue("title"),
		Slug:            c.FormValue("slug"),
		Date:            c.FormValue("date"),
		Status:          c.FormValue("status"),
		Tags:            c.FormValue("tags"),
		Categories:      c.FormValue("categories"),
		ContentMarkdown: c.FormValue("content_markdown"),
		ContentHTML:     c.FormValue("content_html"),
		Excerpt:         c.FormValue("excerpt"),
		Author:          CurrentIdentity(c).User,
	}

	post, err := a.Store.SavePost(form, existing)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			addFlash(c, "error", verr.Reason)
			back := "/admin/posts/new"
			if existing != nil {
				back = "/admin/posts/" + existing.Slug + "/edit"
			}
			return c.Redirect(http.StatusSeeOther, back)
		}
		return err
	}

	addFlash(c, "success", "Post saved")
	return c.Redirect(http.StatusSeeOther, "/admin/posts/"+post.Slug+"/edit")
}

func (a *App) handleAdminSettingsForm(c echo.Context) error {
	v, err := a.newView(c)
	if err != nil {
		return err
	}
	about, err := a.Store.GetPage("about")
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		about = DefaultAboutPage()
	}
	settings, err := a.Store.LoadSettings()
	if err != nil {
		return err
	}
	return Render(c, a.Views.AdminSettings(v, about, navLinksText(settings.NavLinks), settings.MainTitle))
}

func (a *App) handleAdminSettings(c echo.Context) error {
	mainTitle := strings.TrimSpace(c.FormValue("main_title"))
	if mainTitle == "" {
		mainTitle = a.Config.Description
	}
	links := ParseNavLinks(c.FormValue("nav_links"))

	if _, err := a.Store.SavePage("about", PageForm{
		Title:           "About",
		ContentMarkdown: c.FormValue("about_markdown"),
	}); err != nil {
		return err
	}
	if err := a.Store.SaveSettings(Settings{NavLinks: links, MainTitle: mainTitle}); err != nil {
		return err
	}

	addFlash(c, "success", "Settings saved")
	return c.Redirect(http.StatusSeeOther, "/admin/settings")
}

// navLinksText renders nav links back into the textarea form, one
// "label|url|target" per line.
func navLinksText(links []NavLink) string {
	lines := make([]string, 0, len(links))
	for _, l := range links {
		lines = append(lines, l.Label+"|"+l.URL+"|"+l.Target)
	}
	return strings.Join(lines, "\n")
}

package bareblog

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) handleHome(c echo.Context) error {
	v, err := a.newView(c)
	if err != nil {
		return err
	}
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	// Drafts stay in the stream for the logged-in admin, in date order.
	if !v.Identity.LoggedIn() {
		published := make([]Post, 0, len(posts))
		for _, p := range posts {
			if p.Published() {
				published = append(published, p)
			}
		}
		posts = published
	}
	return Render(c, a.Views.Home(v, posts))
}

func (a *App) handlePost(c echo.Context) error {
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
	if !post.Published() && !v.Identity.LoggedIn() {
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(v))
	}
	return Render(c, a.Views.Post(v, post))
}

func (a *App) handleAbout(c echo.Context) error {
	v, err := a.newView(c)
	if err != nil {
		return err
	}
	page, err := a.Store.GetPage("about")
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		page = DefaultAboutPage()
	}
	return Render(c, a.Views.Page(v, page))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Store.ListPosts()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\nDisallow: /admin\n\nSitemap: " +
		BuildURL(a.Config.URL, "sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.staticDir, "favicon.svg"))
}

// handleStylesheet serves the user's style.css when one exists in the
// static dir, otherwise the embedded default.
func (a *App) handleStylesheet(c echo.Context) error {
	onDisk := filepath.Join(a.staticDir, "style.css")
	if _, err := os.Stat(onDisk); err == nil {
		return c.File(onDisk)
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", defaultStylesheet)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	v, verr := a.newView(c)
	if verr != nil {
		v = View{
			SiteTitle:   a.Config.Title,
			Description: a.Config.Description,
			BaseURL:     a.Config.URL,
		}
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(v))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.logger.Error("server error",
			zap.Error(err),
			zap.String("uri", c.Request().RequestURI))
		_ = RenderStatus(c, code, a.Views.ServerError(v))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

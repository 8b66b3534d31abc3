package bareblog

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// newView assembles the per-request View handed to every template: site
// settings, the resolved identity, pending flashes, and the CSRF token.
func (a *App) newView(c echo.Context) (View, error) {
	settings, err := a.Store.LoadSettings()
	if err != nil {
		return View{}, err
	}
	return View{
		SiteTitle:   a.Config.Title,
		Description: a.Config.Description,
		BaseURL:     a.Config.URL,
		MainTitle:   settings.MainTitle,
		NavLinks:    settings.NavLinks,
		Identity:    CurrentIdentity(c),
		Flashes:     takeFlashes(c),
		CSRF:        CsrfToken(c),
	}, nil
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

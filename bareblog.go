// Package bareblog is a minimal flat-file blogging engine built with Go,
// Echo, and templ. Posts, pages, and site settings live in a single
// pretty-printed JSON document on disk; a password-gated admin UI edits
// them; a companion CLI imports WordPress WXR exports.
//
// Users provide their own templ templates via the ViewFuncs struct, and
// bareblog handles all the handler logic, middleware, and storage.
package bareblog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ViewFuncs holds user-provided templ components that the engine calls
// when rendering pages. This is the inversion-of-control mechanism that
// lets users own and customize all templates.
type ViewFuncs struct {
	Home          func(v View, posts []Post) templ.Component
	Post          func(v View, post Post) templ.Component
	Page          func(v View, page Page) templ.Component
	AdminLogin    func(v View, next string) templ.Component
	AdminPosts    func(v View, posts []Post) templ.Component
	AdminEdit     func(v View, post Post, isNew bool) templ.Component
	AdminSettings func(v View, about Page, navLinksText, mainTitle string) templ.Component
	AdminImages   func(v View, images []Image) templ.Component
	NotFound      func(v View) templ.Component
	ServerError   func(v View) templ.Component
}

// App is the central bareblog application. It wires together the store,
// handlers, middleware, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Views  ViewFuncs

	logger       *zap.Logger
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new bareblog App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		logger:    zap.NewNop(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// init builds everything short of listening: store, limiter, middleware,
// and routes. Separate from Start so tests can drive the Echo instance
// directly via httptest.
func (a *App) init() error {
	if a.Config.AdminPassword == "bareblog123" || a.Config.SessionSecret == "dev-secret-change-me" {
		a.logger.Warn("running with development credentials; set ADMIN_PASSWORD and SECRET_KEY")
	}

	if a.Store == nil {
		store, err := NewStore(a.Config.DataPath, a.Config.Description)
		if err != nil {
			return fmt.Errorf("bareblog: init store: %w", err)
		}
		a.Store = store
	}

	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the store, middleware, and routes, and starts the server.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	a.logger.Info("listening",
		zap.String("addr", a.Config.Addr),
		zap.String("data", a.Store.Path()))
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// The user's static dir wins for /public; the embedded stylesheet
	// only answers when no file of that name exists on disk.
	e.GET("/public/style.css", a.handleStylesheet)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)

	// Public routes. Static registrations (about, feed.xml, ...) take
	// priority over the :slug parameter route.
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/about", a.handleAbout)
	e.GET("/:slug", a.handlePost)

	// Login and logout stay outside the gated group.
	e.GET("/admin", a.handleAdminLoginForm)
	e.POST("/admin", a.handleAdminLogin)
	e.GET("/logout", a.handleLogout)

	admin := e.Group("/admin", a.requireLogin)
	admin.GET("/posts", a.handleAdminPosts)
	admin.GET("/posts/new", a.handleAdminNewPostForm)
	admin.POST("/posts/new", a.handleAdminNewPost)
	admin.GET("/posts/:slug/edit", a.handleAdminEditPostForm)
	admin.POST("/posts/:slug/edit", a.handleAdminEditPost)
	admin.GET("/settings", a.handleAdminSettingsForm)
	admin.POST("/settings", a.handleAdminSettings)
	admin.GET("/images", a.handleImageList)
	admin.POST("/images/upload", a.handleImageUpload)
	admin.POST("/images/:filename/delete", a.handleImageDelete)
}

// Close releases background resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	return nil
}

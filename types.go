package bareblog

// Post status values. An empty status is treated as published for
// backward compatibility with hand-edited data files.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
)

// Post is the core content type persisted in the data file and rendered by
// templates. Date and Modified are local-naive ISO-8601 strings
// ("2006-01-02T15:04:05"); they stay strings end to end so a re-save never
// rewrites a timestamp it did not touch.
type Post struct {
	ID              int      `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	Modified        string   `json:"modified"`
	Status          string   `json:"status"`
	Tags            []string `json:"tags"`
	Categories      []string `json:"categories"`
	ContentMarkdown string   `json:"content_markdown"`
	ContentHTML     string   `json:"content_html"`
	Excerpt         string   `json:"excerpt"`
	Author          string   `json:"author"`
}

// Published reports whether the post is visible to anonymous readers.
func (p Post) Published() bool {
	return p.Status == "" || p.Status == StatusPublish
}

// Page is standalone content addressed by slug rather than listed in the
// chronological stream.
type Page struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	ContentMarkdown string `json:"content_markdown"`
	ContentHTML     string `json:"content_html"`
	Updated         string `json:"updated"`
}

// NavLink is one entry in the site navigation bar.
type NavLink struct {
	Label  string `json:"label"`
	URL    string `json:"url"`
	Target string `json:"target"`
}

// Settings holds the site-wide presentation options stored alongside the
// content.
type Settings struct {
	NavLinks  []NavLink `json:"nav_links"`
	MainTitle string    `json:"main_title"`
}

// Document is the whole data file: every read and write moves the complete
// document at once.
type Document struct {
	Posts    []Post          `json:"posts"`
	Pages    map[string]Page `json:"pages"`
	Settings Settings        `json:"settings"`
}

// DefaultNavLinks returns a fresh copy of the stock navigation so callers
// can edit their slice without bleeding into later defaults.
func DefaultNavLinks() []NavLink {
	return []NavLink{
		{Label: "About", URL: "/about", Target: "_self"},
		{Label: "Contact", URL: "mailto:hello@example.com", Target: "_self"},
		{Label: "LinkedIn", URL: "", Target: "_blank"},
		{Label: "GitHub", URL: "", Target: "_blank"},
	}
}

// DefaultSettings builds the settings written into a brand-new data file.
// The main title falls back to the configured site description.
func DefaultSettings(mainTitle string) Settings {
	return Settings{
		NavLinks:  DefaultNavLinks(),
		MainTitle: mainTitle,
	}
}

// PostForm carries raw editor input into SavePost. Tags and Categories are
// comma-separated as typed; Date is whatever the user entered and may be
// empty or unparseable.
type PostForm struct {
	Title           string
	Slug            string
	Date            string
	Status          string
	Tags            string
	Categories      string
	ContentMarkdown string
	ContentHTML     string
	Excerpt         string
	Author          string
}

// PageForm carries editor input into SavePage.
type PageForm struct {
	Title           string
	ContentMarkdown string
	ContentHTML     string
}

// Identity is the authenticated principal resolved once per request and
// carried in the request context. The zero value means anonymous.
type Identity struct {
	User string
}

// LoggedIn reports whether the identity belongs to an authenticated admin.
func (id Identity) LoggedIn() bool { return id.User != "" }

// Flash is a one-shot notice queued in the session and shown on the next
// page render. Category is "success" or "error".
type Flash struct {
	Category string
	Message  string
}

// View bundles everything a template needs about the site and the current
// request. It carries no credentials or config internals.
type View struct {
	SiteTitle   string
	Description string
	BaseURL     string
	MainTitle   string
	NavLinks    []NavLink
	Identity    Identity
	Flashes     []Flash
	CSRF        string
}

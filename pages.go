package bareblog

import "strings"

// LoadSettings returns the current site settings.
func (s *Store) LoadSettings() (Settings, error) {
	doc, err := s.Load()
	if err != nil {
		return Settings{}, err
	}
	return doc.Settings, nil
}

// SaveSettings replaces the site settings, leaving posts and pages alone.
func (s *Store) SaveSettings(settings Settings) error {
	doc, err := s.Load()
	if err != nil {
		return err
	}
	doc.Settings = settings
	return s.Save(doc)
}

// GetPage returns the page stored under slug, or ErrNotFound.
func (s *Store) GetPage(slug string) (Page, error) {
	doc, err := s.Load()
	if err != nil {
		return Page{}, err
	}
	page, ok := doc.Pages[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return page, nil
}

// SavePage resolves editor input for the page stored under slug and
// persists it. The title falls back to the existing page's, then to a
// capitalized form of the slug.
func (s *Store) SavePage(slug string, form PageForm) (Page, error) {
	slug = Slugify(slug)
	if slug == "" {
		return Page{}, ErrSlugRequired
	}

	doc, err := s.Load()
	if err != nil {
		return Page{}, err
	}
	existing, hasExisting := doc.Pages[slug]

	title := strings.TrimSpace(form.Title)
	if title == "" && hasExisting {
		title = existing.Title
	}
	if title == "" {
		title = TitleFromSlug(slug)
	}

	contentMD := strings.TrimSpace(form.ContentMarkdown)
	contentHTML := strings.TrimSpace(form.ContentHTML)
	if contentMD != "" {
		rendered, err := RenderMarkdown(contentMD)
		if err != nil {
			return Page{}, err
		}
		contentHTML = rendered
	} else if contentHTML == "" && hasExisting {
		contentHTML = existing.ContentHTML
	}

	page := Page{
		Title:           title,
		Slug:            slug,
		ContentMarkdown: contentMD,
		ContentHTML:     contentHTML,
		Updated:         NowISO(),
	}
	doc.Pages[slug] = page
	if err := s.Save(doc); err != nil {
		return Page{}, err
	}
	return page, nil
}

// DefaultAboutPage is rendered when no About page has been written yet.
func DefaultAboutPage() Page {
	return Page{Title: "About", Slug: "about"}
}

// ParseNavLinks parses the settings textarea: one link per line,
// "label|url|target" pipe-separated. The target defaults to _blank for
// absolute http(s) URLs and _self otherwise. Lines with fewer than two
// parts are skipped; when nothing parses the stock links are returned.
func ParseNavLinks(text string) []NavLink {
	var links []NavLink
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 2 {
			continue
		}
		label := strings.TrimSpace(parts[0])
		url := strings.TrimSpace(parts[1])
		target := ""
		if len(parts) > 2 {
			target = strings.TrimSpace(parts[2])
		}
		if target == "" {
			if strings.HasPrefix(url, "http") {
				target = "_blank"
			} else {
				target = "_self"
			}
		}
		links = append(links, NavLink{Label: label, URL: url, Target: target})
	}
	if len(links) == 0 {
		return DefaultNavLinks()
	}
	return links
}

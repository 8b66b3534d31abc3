package bareblog

import (
	"sort"
	"strings"
)

// ExcerptLength is the rune budget for auto-generated excerpts.
const ExcerptLength = 220

// ListPosts returns every post newest first. Ordering compares real
// timestamps, so "2024-06-01" and "2024-06-01T00:00:00" interleave
// correctly; posts with a missing or unparseable date sort last. The sort
// is stable, ties keep file order.
func (s *Store) ListPosts() ([]Post, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	posts := doc.Posts
	sort.SliceStable(posts, func(i, j int) bool {
		return ParseDate(posts[i].Date).After(ParseDate(posts[j].Date))
	})
	return posts, nil
}

// FindPostBySlug returns the post owning slug, or ErrNotFound.
func (s *Store) FindPostBySlug(slug string) (Post, error) {
	posts, err := s.ListPosts()
	if err != nil {
		return Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Post{}, ErrNotFound
}

// NextID returns the next free post ID: one past the current maximum, 1 for
// an empty site. IDs are never reused even after manual deletions below the
// maximum.
func NextID(posts []Post) int {
	max := 0
	for _, p := range posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// SavePost resolves raw editor input into a complete Post and persists it.
// existing is the post being edited, nil when creating. Validation failures
// return a *ValidationError before anything is written.
func (s *Store) SavePost(form PostForm, existing *Post) (Post, error) {
	title := strings.TrimSpace(form.Title)
	if title == "" {
		return Post{}, ErrTitleRequired
	}

	slugInput := strings.TrimSpace(form.Slug)
	if slugInput == "" && existing != nil {
		slugInput = existing.Slug
	}
	if slugInput == "" {
		slugInput = title
	}
	newSlug := Slugify(slugInput)
	if newSlug == "" {
		return Post{}, ErrSlugRequired
	}

	doc, err := s.Load()
	if err != nil {
		return Post{}, err
	}

	id := 0
	if existing != nil {
		id = existing.ID
	} else {
		id = NextID(doc.Posts)
	}
	for _, p := range doc.Posts {
		if p.Slug == newSlug && p.ID != id {
			return Post{}, ErrSlugTaken
		}
	}

	contentMD := strings.TrimSpace(form.ContentMarkdown)
	contentHTML := strings.TrimSpace(form.ContentHTML)
	if contentMD != "" {
		rendered, err := RenderMarkdown(contentMD)
		if err != nil {
			return Post{}, err
		}
		contentHTML = rendered
	} else if contentHTML == "" && existing != nil {
		contentHTML = existing.ContentHTML
	}

	// Parseable dates are re-emitted in the canonical layout, so a
	// date-only input like "2024-06-01" is stored with a midnight time.
	date := NowISO()
	if t := ParseDate(form.Date); !t.IsZero() {
		date = t.Format(DateFormat)
	}

	status := strings.TrimSpace(form.Status)
	if status == "" {
		status = StatusPublish
	}

	excerpt := strings.TrimSpace(form.Excerpt)
	if excerpt == "" {
		excerpt = BuildExcerpt(contentHTML, ExcerptLength)
	}

	author := strings.TrimSpace(form.Author)
	if existing != nil {
		author = existing.Author
	}

	post := Post{
		ID:              id,
		Slug:            newSlug,
		Title:           title,
		Date:            date,
		Modified:        NowISO(),
		Status:          status,
		Tags:            SplitCSV(form.Tags),
		Categories:      SplitCSV(form.Categories),
		ContentMarkdown: contentMD,
		ContentHTML:     contentHTML,
		Excerpt:         excerpt,
		Author:          author,
	}

	replaced := false
	for i := range doc.Posts {
		if doc.Posts[i].ID == id {
			doc.Posts[i] = post
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Posts = append(doc.Posts, post)
	}
	if err := s.Save(doc); err != nil {
		return Post{}, err
	}
	return post, nil
}

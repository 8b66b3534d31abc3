package bareblog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSavePostResolvesEditorInput(t *testing.T) {
	s := newTestStore(t)

	form := PostForm{
		Title:           "  My First Post  ",
		Tags:            "go, web, ",
		ContentMarkdown: "# Hello\n\nSome **bold** text.",
		Author:          "admin@bareblog.com",
	}
	post, err := s.SavePost(form, nil)
	require.NoError(t, err)

	require.Equal(t, 1, post.ID)
	require.Equal(t, "my-first-post", post.Slug)
	require.Equal(t, "My First Post", post.Title)
	require.Equal(t, StatusPublish, post.Status)
	require.Equal(t, []string{"go", "web"}, post.Tags)
	require.Empty(t, post.Categories)
	require.Contains(t, post.ContentHTML, "<strong>bold</strong>")
	require.NotContains(t, post.Excerpt, "<")
	require.Contains(t, post.Excerpt, "bold text")
	require.False(t, ParseDate(post.Date).IsZero())
	require.False(t, ParseDate(post.Modified).IsZero())
	require.Equal(t, "admin@bareblog.com", post.Author)

	found, err := s.FindPostBySlug("my-first-post")
	require.NoError(t, err)
	require.Equal(t, post, found)
}

func TestSavePostRequiresTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SavePost(PostForm{Title: "   "}, nil)
	require.ErrorIs(t, err, ErrTitleRequired)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "Title is required", verr.Reason)

	posts, err := s.ListPosts()
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestSavePostRequiresSluggableInput(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SavePost(PostForm{Title: "!!!"}, nil)
	require.ErrorIs(t, err, ErrSlugRequired)
}

func TestSavePostSlugCollisionLeavesFileUntouched(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SavePost(PostForm{Title: "First Post"}, nil)
	require.NoError(t, err)

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	_, err = s.SavePost(PostForm{Title: "Another Title", Slug: "first-post"}, nil)
	require.ErrorIs(t, err, ErrSlugTaken)

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestSavePostEditKeepsIdentityAndBody(t *testing.T) {
	s := newTestStore(t)

	created, err := s.SavePost(PostForm{
		Title:           "Original",
		ContentMarkdown: "Original body.",
		Author:          "alice@example.com",
	}, nil)
	require.NoError(t, err)

	// Editing with an empty Markdown field keeps the stored HTML, and the
	// author cannot be reassigned through the form.
	updated, err := s.SavePost(PostForm{
		Title:  "Retitled",
		Date:   created.Date,
		Status: StatusDraft,
		Author: "mallory@example.com",
	}, &created)
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, created.Slug, updated.Slug)
	require.Equal(t, "Retitled", updated.Title)
	require.Equal(t, created.ContentHTML, updated.ContentHTML)
	require.Equal(t, created.Date, updated.Date)
	require.Equal(t, StatusDraft, updated.Status)
	require.Equal(t, "alice@example.com", updated.Author)

	posts, err := s.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestSavePostRenamesSlug(t *testing.T) {
	s := newTestStore(t)

	created, err := s.SavePost(PostForm{Title: "Old Name", ContentMarkdown: "x"}, nil)
	require.NoError(t, err)

	renamed, err := s.SavePost(PostForm{Title: "Old Name", Slug: "My Fancy Slug!"}, &created)
	require.NoError(t, err)
	require.Equal(t, "my-fancy-slug", renamed.Slug)

	_, err = s.FindPostBySlug("old-name")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSavePostNormalizesDates(t *testing.T) {
	s := newTestStore(t)

	post, err := s.SavePost(PostForm{Title: "Dated", Date: "2024-06-01"}, nil)
	require.NoError(t, err)
	require.Equal(t, "2024-06-01T00:00:00", post.Date)

	post, err = s.SavePost(PostForm{Title: "Spaced", Date: "2024-06-02 08:30:00"}, nil)
	require.NoError(t, err)
	require.Equal(t, "2024-06-02T08:30:00", post.Date)
}

func TestSavePostKeepsManualExcerpt(t *testing.T) {
	s := newTestStore(t)

	post, err := s.SavePost(PostForm{
		Title:           "Summarized",
		ContentMarkdown: "A long body that would normally feed the excerpt.",
		Excerpt:         "Hand-written summary.",
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "Hand-written summary.", post.Excerpt)
}

func TestNextID(t *testing.T) {
	require.Equal(t, 1, NextID(nil))
	require.Equal(t, 8, NextID([]Post{{ID: 3}, {ID: 7}, {ID: 2}}))
}

func TestListPostsOrdersByRealTimestamp(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	require.NoError(t, err)
	doc.Posts = []Post{
		{ID: 1, Slug: "january", Date: "2024-01-01T00:00:00"},
		{ID: 2, Slug: "june", Date: "2024-06-01T12:00:00"},
		{ID: 3, Slug: "undated", Date: "not-a-date"},
		{ID: 4, Slug: "march", Date: "2024-03-05 08:00:00"},
	}
	require.NoError(t, s.Save(doc))

	posts, err := s.ListPosts()
	require.NoError(t, err)
	require.Len(t, posts, 4)
	require.Equal(t, "june", posts[0].Slug)
	require.Equal(t, "march", posts[1].Slug)
	require.Equal(t, "january", posts[2].Slug)
	require.Equal(t, "undated", posts[3].Slug)
}

func TestListPostsTiesKeepFileOrder(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	require.NoError(t, err)
	doc.Posts = []Post{
		{ID: 1, Slug: "first-in-file", Date: "2024-06-01T12:00:00"},
		{ID: 2, Slug: "second-in-file", Date: "2024-06-01T12:00:00"},
	}
	require.NoError(t, s.Save(doc))

	posts, err := s.ListPosts()
	require.NoError(t, err)
	require.Equal(t, "first-in-file", posts[0].Slug)
	require.Equal(t, "second-in-file", posts[1].Slug)
}

func TestPublished(t *testing.T) {
	require.True(t, Post{}.Published())
	require.True(t, Post{Status: StatusPublish}.Published())
	require.False(t, Post{Status: StatusDraft}.Published())
}

package bareblog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDefaultTitle = "A bare-bones blog"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "posts.json")
	s, err := NewStore(path, testDefaultTitle)
	require.NoError(t, err)
	return s
}

func TestEnsureCreatesDefaultDocument(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, doc.Posts)
	require.NotNil(t, doc.Pages)
	require.Empty(t, doc.Pages)
	require.Equal(t, testDefaultTitle, doc.Settings.MainTitle)
	require.Equal(t, DefaultNavLinks(), doc.Settings.NavLinks)

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Contains(t, string(raw), "\n  \"posts\"")
	require.Contains(t, string(raw), "\"nav_links\"")
}

func TestEnsureLeavesExistingFileAlone(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load()
	require.NoError(t, err)
	doc.Posts = append(doc.Posts, Post{ID: 1, Slug: "kept", Title: "Kept"})
	require.NoError(t, s.Save(doc))

	before, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.Ensure())

	after, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
}

func TestLoadFillsOnlyMissingKeys(t *testing.T) {
	s := newTestStore(t)

	// main_title present but empty must survive; nav_links is absent and
	// gets the stock set.
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"settings": {"main_title": ""}}`), 0o644))
	doc, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "", doc.Settings.MainTitle)
	require.Equal(t, DefaultNavLinks(), doc.Settings.NavLinks)
	require.NotNil(t, doc.Pages)
	require.Empty(t, doc.Posts)

	// The mirror case: nav_links present but empty stays empty.
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"settings": {"nav_links": []}}`), 0o644))
	doc, err = s.Load()
	require.NoError(t, err)
	require.Empty(t, doc.Settings.NavLinks)
	require.Equal(t, testDefaultTitle, doc.Settings.MainTitle)
}

func TestLoadLiftsLegacyArrayFile(t *testing.T) {
	s := newTestStore(t)

	legacy := `[{"id": 1, "slug": "old-post", "title": "Old Post", "date": "2020-01-01T00:00:00"}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(legacy), 0o644))

	doc, err := s.Load()
	require.NoError(t, err)
	require.Len(t, doc.Posts, 1)
	require.Equal(t, "old-post", doc.Posts[0].Slug)
	require.NotNil(t, doc.Pages)
	require.Equal(t, DefaultNavLinks(), doc.Settings.NavLinks)
	require.Equal(t, testDefaultTitle, doc.Settings.MainTitle)
}

func TestLoadMalformedFileIsStorageError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	_, err := s.Load()
	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "decode", serr.Op)
	require.Equal(t, s.Path(), serr.Path)
}

func TestLoadMissingFileIsStorageError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.Remove(s.Path()))

	_, err := s.Load()
	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, "read", serr.Op)
}

func TestSaveWritesEmptyContainersForNil(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(Document{Settings: DefaultSettings(testDefaultTitle)}))

	raw, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.Contains(t, string(raw), `"posts": []`)
	require.Contains(t, string(raw), `"pages": {}`)
}

func TestLastWriteWinsOnStaleCopies(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Load()
	require.NoError(t, err)
	second, err := s.Load()
	require.NoError(t, err)

	first.Posts = append(first.Posts, Post{ID: 1, Slug: "from-first", Title: "First"})
	require.NoError(t, s.Save(first))

	// second never saw the post above; saving it erases the earlier write.
	second.Settings.MainTitle = "stale winner"
	require.NoError(t, s.Save(second))

	final, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, final.Posts)
	require.Equal(t, "stale winner", final.Settings.MainTitle)
}

func TestNotFoundSentinel(t *testing.T) {
	s := newTestStore(t)

	_, err := s.FindPostBySlug("nope")
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, errors.Is(err, ErrTitleRequired))
}

package bareblog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// Store reads and writes the single JSON data file. Every operation moves
// the whole document; there is no partial update and no lock, so the last
// writer wins.
type Store struct {
	path         string
	defaultTitle string
}

// NewStore creates a store for the data file at path, ensures the data
// directory and a well-formed file exist, and returns it. defaultTitle
// seeds the main title of a brand-new site.
func NewStore(path, defaultTitle string) (*Store, error) {
	s := &Store{path: path, defaultTitle: defaultTitle}
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// Ensure creates the data directory and, when no file exists yet, writes a
// default document. An existing file is left untouched, even if malformed.
func (s *Store) Ensure() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Path: dir, Err: err}
	}
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return &StorageError{Op: "stat", Path: s.path, Err: err}
	}
	return s.Save(Document{
		Posts:    []Post{},
		Pages:    map[string]Page{},
		Settings: DefaultSettings(s.defaultTitle),
	})
}

// settingsFile mirrors Settings with pointers so a key that is absent from
// the file can be told apart from one present with an empty value. Only
// absent keys receive defaults.
type settingsFile struct {
	NavLinks  []NavLink `json:"nav_links"`
	MainTitle *string   `json:"main_title"`
}

type documentFile struct {
	Posts    []Post          `json:"posts"`
	Pages    map[string]Page `json:"pages"`
	Settings *settingsFile   `json:"settings"`
}

// Load reads and decodes the whole document, filling in defaults for keys
// the file does not carry. A legacy file holding a bare post array is
// upgraded in memory to the document form.
func (s *Store) Load() (Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return Document{}, &StorageError{Op: "read", Path: s.path, Err: err}
	}

	doc := Document{
		Posts:    []Post{},
		Pages:    map[string]Page{},
		Settings: DefaultSettings(s.defaultTitle),
	}

	if bytes.HasPrefix(bytes.TrimLeft(raw, " \t\r\n"), []byte("[")) {
		var posts []Post
		if err := json.Unmarshal(raw, &posts); err != nil {
			return Document{}, &StorageError{Op: "decode", Path: s.path, Err: err}
		}
		doc.Posts = posts
		return doc, nil
	}

	var file documentFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Document{}, &StorageError{Op: "decode", Path: s.path, Err: err}
	}
	if file.Posts != nil {
		doc.Posts = file.Posts
	}
	if file.Pages != nil {
		doc.Pages = file.Pages
	}
	if file.Settings != nil {
		if file.Settings.NavLinks != nil {
			doc.Settings.NavLinks = file.Settings.NavLinks
		}
		if file.Settings.MainTitle != nil {
			doc.Settings.MainTitle = *file.Settings.MainTitle
		}
	}
	return doc, nil
}

// Save encodes the whole document and replaces the file. Nil containers are
// written as empty ones so the file always carries every top-level key.
func (s *Store) Save(doc Document) error {
	if doc.Posts == nil {
		doc.Posts = []Post{}
	}
	if doc.Pages == nil {
		doc.Pages = map[string]Page{}
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Op: "mkdir", Path: dir, Err: err}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StorageError{Op: "encode", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

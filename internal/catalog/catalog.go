// Package catalog holds the in-memory registry of refactoring techniques and
// code smells. The catalog is built once from the content directory and is
// read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Entry is a single catalog record describing one technique or smell.
type Entry struct {
	ID            string // unique slug, e.g. "extract-method"
	Title         string
	Category      string
	Summary       string
	ReferencePath string // path of the source Markdown document
	Body          []byte // document body with frontmatter stripped
}

// Category groups entries under one of the fixed top-level headings
// (e.g. "Composing Methods", "Bloaters"). Entries keep load order.
type Category struct {
	Name    string
	Entries []*Entry
}

// ErrNotFound is returned by FindByID for ids not present in the catalog.
var ErrNotFound = errors.New("entry not found")

// DuplicateIDError aborts catalog construction when two documents claim the
// same id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate entry id %q", e.ID)
}

// UnknownCategoryError aborts catalog construction when an entry names a
// category outside the set declared by the category manifest.
type UnknownCategoryError struct {
	ID       string
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("entry %q has unknown category %q", e.ID, e.Category)
}

type Catalog struct {
	entries    []*Entry
	byID       map[string]*Entry
	categories []*Category
	byCategory map[string]*Category
}

// New builds a catalog from the manifest's ordered category names and the
// entries in load order. Construction fails on an id collision or on an entry
// whose category is not in the manifest set.
func New(categoryNames []string, entries []*Entry) (*Catalog, error) {
	c := &Catalog{
		byID:       make(map[string]*Entry, len(entries)),
		byCategory: make(map[string]*Category, len(categoryNames)),
	}

	for _, name := range categoryNames {
		if _, ok := c.byCategory[name]; ok {
			return nil, fmt.Errorf("category %q declared twice in manifest", name)
		}
		cat := &Category{Name: name}
		c.categories = append(c.categories, cat)
		c.byCategory[name] = cat
	}

	for _, e := range entries {
		if _, ok := c.byID[e.ID]; ok {
			return nil, &DuplicateIDError{ID: e.ID}
		}
		cat, ok := c.byCategory[e.Category]
		if !ok {
			return nil, &UnknownCategoryError{ID: e.ID, Category: e.Category}
		}
		c.byID[e.ID] = e
		c.entries = append(c.entries, e)
		cat.Entries = append(cat.Entries, e)
	}

	return c, nil
}

// Len reports the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all entries in load order.
func (c *Catalog) Entries() []*Entry {
	return c.entries
}

// FindByID returns the entry with the exact given id, or ErrNotFound.
func (c *Catalog) FindByID(id string) (*Entry, error) {
	e, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Categories returns all categories in manifest order. Categories without
// entries are included so the listing mirrors the manifest.
func (c *Catalog) Categories() []*Category {
	return c.categories
}

// EntriesFor returns the entries of the named category in load order. An
// unknown name yields an empty result, not an error.
func (c *Catalog) EntriesFor(name string) []*Entry {
	cat, ok := c.byCategory[name]
	if !ok {
		return nil
	}
	return cat.Entries
}

// Search ranks entries by case-insensitive substring occurrence count of the
// keyword, title matches before summary matches. Ties keep catalog order. The
// corpus is small and fixed, so this is a plain linear scan.
func (c *Catalog) Search(keyword string) []*Entry {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}

	type match struct {
		entry   *Entry
		title   int
		summary int
	}
	var matches []match
	for _, e := range c.entries {
		m := match{
			entry:   e,
			title:   strings.Count(strings.ToLower(e.Title), needle),
			summary: strings.Count(strings.ToLower(e.Summary), needle),
		}
		if m.title > 0 || m.summary > 0 {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].title != matches[j].title {
			return matches[i].title > matches[j].title
		}
		return matches[i].summary > matches[j].summary
	})

	result := make([]*Entry, len(matches))
	for i, m := range matches {
		result[i] = m.entry
	}
	return result
}

// Package loader builds the catalog from a content directory of Markdown
// documents plus a categories.yaml manifest.
package loader

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"refbook/internal/catalog"
)

// ManifestName is the category index file expected at the content root. Its
// ordered category list is the closed set of valid categories and fixes the
// order reported by Catalog.Categories.
const ManifestName = "categories.yaml"

type manifest struct {
	Categories []string `yaml:"categories"`
}

type entryMeta struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Summary  string `yaml:"summary"`
}

// Load walks contentDir, parses the frontmatter of every .md document and
// builds the catalog. Documents are visited in lexical path order, which is
// the catalog's load order. Any malformed document, duplicate id, or unknown
// category aborts the load.
func Load(contentDir string) (*catalog.Catalog, error) {
	names, err := readManifest(filepath.Join(contentDir, ManifestName))
	if err != nil {
		return nil, err
	}

	titleCaser := cases.Title(language.English)

	var entries []*catalog.Entry
	walkErr := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path %q: %w", path, err)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}

		var meta entryMeta
		body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
		if err != nil {
			return fmt.Errorf("failed to parse frontmatter of %q: %w", path, err)
		}

		slug := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		if meta.ID == "" {
			meta.ID = slug
		}
		if meta.Title == "" {
			meta.Title = titleCaser.String(strings.NewReplacer("-", " ", "_", " ").Replace(slug))
		}

		entries = append(entries, &catalog.Entry{
			ID:            meta.ID,
			Title:         meta.Title,
			Category:      meta.Category,
			Summary:       meta.Summary,
			ReferencePath: path,
			Body:          body,
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("collecting content from %q: %w", contentDir, walkErr)
	}

	cat, err := catalog.New(names, entries)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	return cat, nil
}

func readManifest(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category manifest %q: %w", path, err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category manifest %q: %w", path, err)
	}
	if len(m.Categories) == 0 {
		return nil, fmt.Errorf("category manifest %q declares no categories", path)
	}
	return m.Categories, nil
}

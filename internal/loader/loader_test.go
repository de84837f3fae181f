package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"refbook/internal/catalog"
)

const testManifest = `categories:
  - Composing Methods
  - Bloaters
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, testManifest)
	writeFile(t, dir, "extract-method.md", `---
id: extract-method
title: Extract Method
category: Composing Methods
summary: Move a fragment into its own method.
---

# Extract Method

Body text.
`)
	writeFile(t, dir, "long-method.md", `---
id: long-method
title: Long Method
category: Bloaters
summary: Too many lines.
---

# Long Method
`)
	writeFile(t, dir, "notes.txt", "not part of the corpus")

	cat, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	e, err := cat.FindByID("extract-method")
	require.NoError(t, err)
	assert.Equal(t, "Extract Method", e.Title)
	assert.Equal(t, "Composing Methods", e.Category)
	assert.Equal(t, "Move a fragment into its own method.", e.Summary)
	assert.Equal(t, filepath.Join(dir, "extract-method.md"), e.ReferencePath)

	// The body starts after the frontmatter block.
	assert.Contains(t, string(e.Body), "# Extract Method")
	assert.NotContains(t, string(e.Body), "category:")
}

func TestLoadDerivesIDAndTitleFromFilename(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, testManifest)
	writeFile(t, dir, "long-parameter-list.md", `---
category: Bloaters
---

A method with too many parameters.
`)

	cat, err := Load(dir)
	require.NoError(t, err)

	e, err := cat.FindByID("long-parameter-list")
	require.NoError(t, err)
	assert.Equal(t, "Long Parameter List", e.Title)
}

func TestLoadVisitsSubdirectoriesInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, testManifest)
	writeFile(t, dir, filepath.Join("smells", "long-method.md"), "---\ncategory: Bloaters\n---\n")
	writeFile(t, dir, "extract-method.md", "---\ncategory: Composing Methods\n---\n")

	cat, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	entries := cat.Entries()
	assert.Equal(t, "extract-method", entries[0].ID)
	assert.Equal(t, "long-method", entries[1].ID)
}

func TestLoadRejectsDuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, testManifest)
	writeFile(t, dir, "a.md", "---\nid: extract-method\ncategory: Composing Methods\n---\n")
	writeFile(t, dir, "b.md", "---\nid: extract-method\ncategory: Bloaters\n---\n")

	_, err := Load(dir)
	require.Error(t, err)

	var dup *catalog.DuplicateIDError
	assert.ErrorAs(t, err, &dup)
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, testManifest)
	writeFile(t, dir, "odd.md", "---\ncategory: Made Up\n---\n")

	_, err := Load(dir)
	require.Error(t, err)

	var unknown *catalog.UnknownCategoryError
	assert.ErrorAs(t, err, &unknown)
}

func TestLoadRequiresManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "extract-method.md", "---\ncategory: Composing Methods\n---\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ManifestName, "categories: []\n")

	_, err := Load(dir)
	assert.Error(t, err)
}

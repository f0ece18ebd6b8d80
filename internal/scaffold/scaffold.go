package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"civicwiki/internal/builder"
	"civicwiki/internal/docview"
)

// CreateWorkspace lays out a fresh wiki workspace: a content directory with a
// starter page, a wiki.yaml, and a page template seeded from the built-in
// default so editors have something concrete to restyle.
func CreateWorkspace(name string) error {
	fmt.Println("Scaffolding new wiki workspace in:", name)

	if err := os.MkdirAll(filepath.Join(name, "wiki"), 0755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}

	files := map[string]string{
		"wiki.yaml":          wikiYamlContent,
		"wiki-template.html": builder.DefaultTemplate,
		"wiki/welcome.md":    welcomePageContent,
	}
	for path, content := range files {
		if err := os.WriteFile(filepath.Join(name, path), []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}

	fmt.Println("Workspace scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  civicwiki build")
	fmt.Println("  civicwiki serve")
	return nil
}

// CreatePage adds a new Markdown page to the content directory, named after
// the slug of its title.
func CreatePage(contentDir, title string) error {
	slug := docview.Slug(title)
	if slug == "" {
		return fmt.Errorf("cannot derive a filename from title %q", title)
	}

	path := filepath.Join(contentDir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("page already exists: %s", path)
	}

	tmpl, err := template.New("page").Parse(pageArchetype)
	if err != nil {
		return fmt.Errorf("failed to parse page archetype: %w", err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, struct{ Title string }{Title: title}); err != nil {
		return fmt.Errorf("failed to execute page archetype: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Println("Created:", path)
	return nil
}

const wikiYamlContent = `title: Civic Wiki
description: Documentation for our civic-engagement site.
baseurl: /
content_dir: wiki
output_dir: public/html
template: wiki-template.html
`

const pageArchetype = `---
title: "{{.Title}}"
---

# {{.Title}}

Write something meaningful here.
`

const welcomePageContent = `---
title: "Welcome"
---

# Welcome

This wiki explains how to search municipal agenda items and what the data
means.

## Getting Started

Edit the Markdown files in the wiki directory, then run a build.

## Publishing

Generated pages land in the output directory along with an index page and a
manifest for the site to discover them.
`

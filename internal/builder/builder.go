package builder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"civicwiki/internal/config"
)

// Options adjusts a batch build.
type Options struct {
	// Sanitize runs rendered HTML through the UGC policy. Off by default:
	// wiki sources are maintained in-repo by trusted editors.
	Sanitize bool
}

// ManifestFile is the side-car artifact listing every generated page, written
// next to the pages so other tooling can discover them without a directory
// scan.
const ManifestFile = "manifest.json"

// Build runs the batch pipeline: every Markdown file in the content
// directory becomes one HTML page in the output directory, followed by an
// index page and the manifest. Files are processed independently; a bad file
// is recorded in Result.Failures and the batch carries on.
func Build(cfg config.Config, opts Options) (Result, error) {
	info, err := os.Stat(cfg.ContentDir)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return Result{}, fmt.Errorf("%w: %s", ErrContentDirMissing, cfg.ContentDir)
	}
	if err != nil {
		return Result{}, fmt.Errorf("could not stat content directory %s: %w", cfg.ContentDir, err)
	}

	tmpl, err := LoadTemplate(cfg.Template)
	if err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return Result{}, err
	}

	entries, err := os.ReadDir(cfg.ContentDir)
	if err != nil {
		return Result{}, err
	}

	var result Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}

		page, err := buildPage(cfg, tmpl, entry.Name(), opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %v\n", entry.Name(), err)
			result.Failures = append(result.Failures, FileError{File: entry.Name(), Err: err})
			continue
		}
		fmt.Printf("  ✓ %s -> %s\n", entry.Name(), page.Name)
		result.Pages = append(result.Pages, page)
	}

	if err := writeIndex(cfg, tmpl, result.Pages); err != nil {
		return result, err
	}
	if err := writeManifest(cfg.OutputDir, result.Pages); err != nil {
		return result, err
	}

	return result, nil
}

// buildPage converts one source file into a templated HTML document on disk.
func buildPage(cfg config.Config, tmpl, name string, opts Options) (Page, error) {
	raw, err := os.ReadFile(filepath.Join(cfg.ContentDir, name))
	if err != nil {
		return Page{}, fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(raw) {
		return Page{}, fmt.Errorf("content file is not valid UTF-8")
	}

	meta, body := parseFrontMatter(raw)

	fragment, err := renderMarkdown(body, opts.Sanitize)
	if err != nil {
		return Page{}, err
	}

	id := strings.TrimSuffix(name, filepath.Ext(name))
	page := Page{
		Name:  id + ".html",
		ID:    id,
		Title: ResolveTitle(meta.Title, body, name),
	}
	page.HTML = ApplyTemplate(tmpl, page.Title, fragment, name)

	outPath := filepath.Join(cfg.OutputDir, page.Name)
	if err := os.WriteFile(outPath, []byte(page.HTML), 0644); err != nil {
		return Page{}, fmt.Errorf("failed to write page: %w", err)
	}
	return page, nil
}

// writeIndex generates index.html linking every page in enumeration order.
func writeIndex(cfg config.Config, tmpl string, pages []Page) error {
	var b strings.Builder
	b.WriteString("<h1>" + cfg.Title + "</h1>\n")
	if cfg.Description != "" {
		b.WriteString("<p>" + cfg.Description + "</p>\n")
	}
	b.WriteString("<ul>\n")
	for _, page := range pages {
		fmt.Fprintf(&b, "  <li><a href=\"%s\">%s</a></li>\n", page.Name, page.Title)
	}
	b.WriteString("</ul>\n")

	doc := ApplyTemplate(tmpl, cfg.Title, b.String(), "index")
	return os.WriteFile(filepath.Join(cfg.OutputDir, "index.html"), []byte(doc), 0644)
}

// writeManifest persists the ordered list of generated filenames. The
// manifest is rebuilt whole on every run; there is no incremental merge.
func writeManifest(outputDir string, pages []Page) error {
	names := make([]string, 0, len(pages))
	for _, page := range pages {
		names = append(names, page.Name)
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outputDir, ManifestFile), append(data, '\n'), 0644)
}

// ReadManifest loads the manifest written by a previous build.
func ReadManifest(outputDir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(outputDir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("malformed manifest: %w", err)
	}
	return names, nil
}

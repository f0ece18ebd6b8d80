package builder

// PageMeta holds metadata parsed from a document's front matter. Unknown keys
// are collected into Params so future template work can reach them.
type PageMeta struct {
	Title  string         `yaml:"title"`
	Author string         `yaml:"author"`
	Params map[string]any `yaml:",inline"`
}

// Page is one generated wiki page.
type Page struct {
	// Name is the output filename, e.g. "housing-policy.html".
	Name string
	// ID is the document identifier derived from the source filename,
	// e.g. "housing-policy".
	ID string
	// Title is the resolved page title (front matter, first heading, or
	// filename, in that order).
	Title string
	// HTML is the full templated document as written to disk.
	HTML string
}

// FileError records a single source file that failed during a batch build.
type FileError struct {
	File string
	Err  error
}

// Result summarizes a batch build run.
type Result struct {
	// Pages lists generated pages in enumeration order.
	Pages []Page
	// Failures lists source files that could not be processed. A non-empty
	// list does not abort the batch; successful pages are still written.
	Failures []FileError
}

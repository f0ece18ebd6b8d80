package builder

import (
	"fmt"
	"os"
	"strings"
)

// Placeholder tokens recognized in page templates.
const (
	tokenTitle    = "{{title}}"
	tokenContent  = "{{content}}"
	tokenFilename = "{{filename}}"
)

// ApplyTemplate fills a template's placeholder tokens. Every occurrence of a
// token is replaced, not just the first. Values are substituted verbatim with
// no escaping; wiki content is maintained by trusted editors.
func ApplyTemplate(tmpl, title, content, filename string) string {
	out := strings.ReplaceAll(tmpl, tokenTitle, title)
	out = strings.ReplaceAll(out, tokenContent, content)
	out = strings.ReplaceAll(out, tokenFilename, filename)
	return out
}

// LoadTemplate reads the page template from path. When no template file
// exists the built-in default shell is used instead; any other read failure
// is an error.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultTemplate, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRead, err)
	}
	return string(data), nil
}

// DefaultTemplate is the built-in page shell used when a workspace has no
// template file of its own.
const DefaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{title}}</title>
  <style>
    body {
      font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
      max-width: 760px;
      margin: 2em auto;
      padding: 0 1em;
      line-height: 1.6;
      color: #1f2430;
      background: #fdfdfd;
    }
    h1, h2, h3 { line-height: 1.25; }
    a { color: #1a5fb4; }
    pre {
      background: #f4f4f2;
      padding: 0.75em 1em;
      overflow-x: auto;
      border-radius: 4px;
    }
    code { font-size: 0.95em; }
    table { border-collapse: collapse; }
    th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; }
    blockquote {
      margin-left: 0;
      padding-left: 1em;
      border-left: 3px solid #ccc;
      color: #555;
    }
    footer {
      margin-top: 3em;
      font-size: 0.85em;
      color: #777;
      border-top: 1px solid #e2e2e2;
      padding-top: 0.75em;
    }
  </style>
</head>
<body>
  <main>
{{content}}
  </main>
  <footer>Source: {{filename}}</footer>
</body>
</html>
`

package builder

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownRenderer = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					// CSS classes instead of inline styles so the page
					// stylesheet controls the palette.
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			// Heading IDs generated at build time are what the viewer's
			// TOC links against; WithHardWraps stays off so single
			// newlines don't become <br>.
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	htmlSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts a Markdown body to an HTML fragment. Wiki content
// comes from trusted maintainers, so raw HTML passes through untouched unless
// the caller asked for sanitization.
func renderMarkdown(body []byte, sanitize bool) (string, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert(body, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownConvert, err)
	}
	if sanitize {
		return string(htmlSanitizer.SanitizeBytes(buf.Bytes())), nil
	}
	return buf.String(), nil
}

package builder

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// parseFrontMatter splits raw document content into metadata and body. The
// front matter block is optional: a document that has none comes back with
// empty metadata and the full content as body. Malformed front matter is not
// an error either; the delimited block simply fails to parse and the whole
// text is treated as body.
func parseFrontMatter(raw []byte) (PageMeta, []byte) {
	var meta PageMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return PageMeta{}, raw
	}
	return meta, body
}

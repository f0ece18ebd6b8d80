package builder

import "errors"

// Sentinel errors for build operations.
var (
	ErrContentDirMissing = errors.New("content directory does not exist")
	ErrMarkdownConvert   = errors.New("markdown conversion failed")
	ErrTemplateRead      = errors.New("template file could not be read")
)

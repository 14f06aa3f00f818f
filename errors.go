package wix2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrSourceNotFound   = errors.New("source document not found")
	ErrLayoutDirective  = errors.New("fragment missing layout directive")
	ErrLayoutMismatch   = errors.New("fragment extends a different layout")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrRender           = errors.New("template rendering failed")
	ErrWriteOutput      = errors.New("failed to write output file")

	// Page record validation errors.
	ErrEmptyTemplate   = errors.New("page record template cannot be empty")
	ErrEmptyOutputPath = errors.New("page record output path cannot be empty")
	ErrEmptyPageID     = errors.New("page identifier cannot be empty")

	// Asset index errors.
	ErrAssetsDirUnreadable = errors.New("cannot read assets directory")
)

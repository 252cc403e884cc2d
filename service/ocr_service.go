package service

import (
	"context"
	"errors"
)

// ErrUnsupportedDocument reports that the analyzer cannot process the given
// document format. The extractor uses it to move on to the next fallback
// step instead of failing the request.
var ErrUnsupportedDocument = errors.New("unsupported document format")

// Block is one unit of detected document content.
type Block struct {
	BlockType string
	Text      string
}

// BlockTypeLine marks a detected line of text.
const BlockTypeLine = "LINE"

// FeatureForms enables key/value form detection in AnalyzeDocument.
const FeatureForms = "FORMS"

// DocumentAnalyzer is the OCR collaborator. AnalyzeExpense returns structured
// key/value fields from invoice-like documents; AnalyzeDocument runs generic
// analysis and returns detected blocks in reading order. Implementations map
// their "can't read this format" condition to ErrUnsupportedDocument.
type DocumentAnalyzer interface {
	AnalyzeExpense(ctx context.Context, data []byte) (map[string]string, error)
	AnalyzeDocument(ctx context.Context, data []byte, features []string) ([]Block, error)
}

// PageReader is the local parser collaborator: raw PDF bytes in, one string
// per page out. It is the last extraction fallback and needs no network.
type PageReader interface {
	ReadPages(data []byte) ([]string, error)
}

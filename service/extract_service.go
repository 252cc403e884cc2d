package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tieubaoca/docsum-be/types"
)

// NoTextMarker is the message surfaced when every extraction method yields
// nothing.
const NoTextMarker = "No text was detected in the document."

// ErrNoTextDetected reports that the whole fallback chain came back empty.
var ErrNoTextDetected = errors.New(NoTextMarker)

// ExtractService turns raw document bytes into text. It tries the analyzer's
// expense API first, then generic forms analysis, then the local PDF text
// layer. A nil analyzer (no OCR credentials) goes straight to the local
// parser. No state is kept between calls.
type ExtractService struct {
	analyzer DocumentAnalyzer
	pages    PageReader
}

func NewExtractService(analyzer DocumentAnalyzer, pages PageReader) *ExtractService {
	return &ExtractService{analyzer: analyzer, pages: pages}
}

// Extract runs the fallback chain. The returned ExtractedText records which
// method succeeded; failures of intermediate steps are absorbed and only
// exhaustion of the whole chain produces an error.
func (s *ExtractService) Extract(ctx context.Context, doc types.Document) (types.ExtractedText, error) {
	if s.analyzer != nil {
		if text, ok := s.extractExpense(ctx, doc); ok {
			return types.ExtractedText{Name: doc.Name, Text: text, Method: types.MethodExpense}, nil
		}
		if text, ok := s.extractForms(ctx, doc); ok {
			return types.ExtractedText{Name: doc.Name, Text: text, Method: types.MethodForms}, nil
		}
	}

	text, err := s.extractTextLayer(doc)
	if err != nil {
		return types.ExtractedText{}, fmt.Errorf("extract %s: %w", doc.Name, err)
	}
	if text == "" {
		return types.ExtractedText{}, fmt.Errorf("extract %s: %w", doc.Name, ErrNoTextDetected)
	}
	return types.ExtractedText{Name: doc.Name, Text: text, Method: types.MethodPDFText}, nil
}

func (s *ExtractService) extractExpense(ctx context.Context, doc types.Document) (string, bool) {
	fields, err := s.analyzer.AnalyzeExpense(ctx, doc.Data)
	if err != nil {
		log.Warn().Err(err).Str("document", doc.Name).Msg("expense analysis failed, trying forms")
		return "", false
	}
	// Zero detected fields is a miss, not an empty success.
	if len(fields) == 0 {
		return "", false
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		return "", false
	}
	return string(encoded), true
}

func (s *ExtractService) extractForms(ctx context.Context, doc types.Document) (string, bool) {
	blocks, err := s.analyzer.AnalyzeDocument(ctx, doc.Data, []string{FeatureForms})
	if err != nil {
		log.Warn().Err(err).Str("document", doc.Name).Msg("document analysis failed, trying local text layer")
		return "", false
	}
	var sb strings.Builder
	for _, block := range blocks {
		if block.BlockType != BlockTypeLine {
			continue
		}
		sb.WriteString(block.Text)
		sb.WriteString("\n")
	}
	text := strings.TrimSpace(sb.String())
	return text, text != ""
}

// extractTextLayer reads the PDF text layer page by page, marking each page
// boundary so the model can tell pages apart. Empty pages are skipped but
// keep their page number.
func (s *ExtractService) extractTextLayer(doc types.Document) (string, error) {
	pages, err := s.pages.ReadPages(doc.Data)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n--- PAGE %d ---\n", i+1))
		sb.WriteString(page)
	}
	return strings.TrimSpace(sb.String()), nil
}

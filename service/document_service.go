package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tieubaoca/docsum-be/types"
)

// DocumentService is the boundary the HTTP layer and the CLI talk to:
// documents in, summary out. Within one request the stages run strictly in
// order: extract, filter, aggregate, summarize. Nothing is retained between
// requests.
type DocumentService struct {
	extractor  *ExtractService
	summarizer *SummaryService
}

func NewDocumentService(extractor *ExtractService, summarizer *SummaryService) *DocumentService {
	return &DocumentService{extractor: extractor, summarizer: summarizer}
}

// Process runs the full pipeline. A single document defaults to a narrative
// summary; multiple documents are aggregated and summarized into the
// structured schema. opts.Mode overrides that default when set.
func (s *DocumentService) Process(ctx context.Context, docs []types.Document, opts types.SummarizeOptions) (types.SummaryResult, error) {
	if len(docs) == 0 {
		return types.SummaryResult{}, errors.New("no documents provided")
	}

	filtered := make([]types.FilteredText, 0, len(docs))
	for _, doc := range docs {
		extracted, err := s.extract(ctx, doc)
		if err != nil {
			return types.SummaryResult{}, err
		}
		filtered = append(filtered, types.FilteredText{
			Name: extracted.Name,
			Text: FilterBoilerplate(extracted.Text),
		})
	}

	multiple := len(docs) > 1
	if opts.Mode == "" {
		if multiple {
			opts.Mode = types.ModeStructured
		} else {
			opts.Mode = types.ModeNarrative
		}
	}

	var corpus string
	if multiple {
		corpus = AggregateDocuments(filtered)
		if len(opts.SourceIDs) == 0 {
			for _, doc := range docs {
				opts.SourceIDs = append(opts.SourceIDs, doc.Name)
			}
		}
	} else {
		corpus = filtered[0].Text
	}

	result, err := s.summarizer.Summarize(ctx, corpus, opts)
	if err != nil {
		return types.SummaryResult{}, err
	}
	log.Info().
		Int("documents", len(docs)).
		Str("mode", string(opts.Mode)).
		Bool("degraded", result.Degraded()).
		Msg("summary produced")
	return result, nil
}

// extract decodes plain text directly; everything else goes through the OCR
// fallback chain.
func (s *DocumentService) extract(ctx context.Context, doc types.Document) (types.ExtractedText, error) {
	if doc.MediaType == "text/plain" || strings.HasSuffix(strings.ToLower(doc.Name), ".txt") {
		return types.ExtractedText{Name: doc.Name, Text: string(doc.Data), Method: types.MethodPlain}, nil
	}
	return s.extractor.Extract(ctx, doc)
}

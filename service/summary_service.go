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

// Default word budgets embedded in the prompts.
const (
	DefaultMaxWords         = 150
	DefaultMultiDocMaxWords = 500
)

// SummaryService turns a text corpus into a narrative or structured summary.
// Every prompt is sent to the primary model first and retried once,
// unchanged, against the fallback model.
type SummaryService struct {
	ai               AIService
	primaryModel     string
	fallbackModel    string
	maxWords         int
	multiDocMaxWords int
}

// NewSummaryService builds a summarizer with per-mode word budgets.
// Non-positive budgets fall back to DefaultMaxWords and
// DefaultMultiDocMaxWords.
func NewSummaryService(ai AIService, primaryModel, fallbackModel string, maxWords, multiDocMaxWords int) *SummaryService {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	if multiDocMaxWords <= 0 {
		multiDocMaxWords = DefaultMultiDocMaxWords
	}
	return &SummaryService{
		ai:               ai,
		primaryModel:     primaryModel,
		fallbackModel:    fallbackModel,
		maxWords:         maxWords,
		multiDocMaxWords: multiDocMaxWords,
	}
}

// AggregateDocuments concatenates filtered documents into one corpus, tagging
// each section with its source name. Submission order is preserved exactly.
func AggregateDocuments(docs []types.FilteredText) string {
	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(fmt.Sprintf("\n\n--- DOCUMENT: %s ---\n\n", doc.Name))
		sb.WriteString(doc.Text)
	}
	return strings.TrimSpace(sb.String())
}

// Summarize produces one summary for the corpus. Structured mode degrades to
// a raw passthrough on malformed model output; only failure of both models
// returns an error.
func (s *SummaryService) Summarize(ctx context.Context, corpus string, opts types.SummarizeOptions) (types.SummaryResult, error) {
	if strings.TrimSpace(corpus) == "" {
		return types.SummaryResult{}, errors.New("no text provided for summarization")
	}

	maxWords := opts.MaxWords
	if maxWords <= 0 {
		if opts.Mode == types.ModeStructured {
			maxWords = s.multiDocMaxWords
		} else {
			maxWords = s.maxWords
		}
	}

	var prompt string
	if opts.Mode == types.ModeStructured {
		prompt = structuredPrompt(corpus, opts.SourceIDs, maxWords)
	} else {
		prompt = narrativePrompt(corpus, maxWords)
	}

	text, err := s.generateWithFallback(ctx, prompt)
	if err != nil {
		return types.SummaryResult{}, fmt.Errorf("summarization failed on both models: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return types.SummaryResult{}, errors.New("model returned an empty response")
	}

	if opts.Mode != types.ModeStructured {
		return types.SummaryResult{Narrative: text}, nil
	}
	return repairStructured(text), nil
}

// generateWithFallback retries the identical prompt on the fallback model
// when the primary call errors.
func (s *SummaryService) generateWithFallback(ctx context.Context, prompt string) (string, error) {
	text, err := s.ai.Generate(ctx, prompt, s.primaryModel)
	if err == nil {
		return text, nil
	}
	log.Warn().Err(err).
		Str("model", s.primaryModel).
		Str("fallback", s.fallbackModel).
		Msg("primary model failed, trying fallback model")
	return s.ai.Generate(ctx, prompt, s.fallbackModel)
}

// repairStructured parses model output into the summary schema. Malformed
// JSON degrades to a raw passthrough instead of an error.
func repairStructured(text string) types.SummaryResult {
	raw, ok := RepairJSON(text)
	if !ok {
		return types.SummaryResult{RawSummary: strings.TrimSpace(text)}
	}
	var summary types.StructuredSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return types.SummaryResult{RawSummary: strings.TrimSpace(text)}
	}
	summary.Normalize()
	return types.SummaryResult{Structured: &summary}
}

func narrativePrompt(text string, maxWords int) string {
	return fmt.Sprintf(`Summarize the following text in a concise way, not exceeding %d words.
Focus on the main points and key information:

%s`, maxWords, text)
}

func structuredPrompt(text string, sourceIDs []string, maxWords int) string {
	filesInfo := ""
	if len(sourceIDs) > 0 {
		filesInfo = "Documents analyzed: " + strings.Join(sourceIDs, ", ")
	}

	return fmt.Sprintf(`You are an expert travel document summarizer. Given the following travel documents, extract and return a JSON object with this structure:

{
  "traveler_info": [
    {
      "full_name": "",
      "number_of_companions": 0,
      "companions": []
    }
  ],
  "travel_details": [
    {
      "journey": 1,
      "pnr_number": "",
      "mode_of_transport": "",
      "train_or_flight_number": "",
      "date": "",
      "time": "",
      "route": "",
      "seat": "",
      "fare": ""
    }
  ],
  "accommodation_details": [
    {
      "hotel": "",
      "booking_id": "",
      "stay": "",
      "room_type": "",
      "guests": "",
      "total_cost": "",
      "key_amenities": []
    }
  ],
  "cost_summary": {
    "transportation": "",
    "accommodation": "",
    "total_trip_cost": ""
  },
  "notes": {
    "critical_info": "",
    "special_requirements": "",
    "extra_docs": ""
  },
  "overview": ""
}

Instructions:
- Extract every traveler's name from the documents and include each as an entry in "traveler_info".
- If travelers are part of the same booking (e.g., a family), use the same "travel_details", "accommodation_details", "cost_summary", and "notes" for all travelers.
- For the "notes" section:
    - "critical_info" should be concise (no more than 1-2 lines, only the most important info).
    - "special_requirements" and "extra_docs" should be brief and relevant.
- For "accommodation_details", include at most 5 or 6 of the most important hotel amenities in "key_amenities".
- For "overview", write a short, 3-4 line summary of the trip based on the invoices, mentioning the main highlights (e.g., destination, duration, travel/accommodation type, and any special notes).
- Do NOT omit any traveler or important field. If a field is missing, leave it as an empty string, 0, or empty list.
- For lists (like journeys, accommodations, companions, amenities), include all relevant items, but limit amenities as above.
- Do NOT include any explanation or text outside the JSON object.
- Maximum length: %d words.

%s

Here are the document contents:

%s`, maxWords, filesInfo, text)
}

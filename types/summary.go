package types

import "encoding/json"

// TravelerInfo identifies one traveler named anywhere in the documents.
type TravelerInfo struct {
	FullName           string   `json:"full_name"`
	NumberOfCompanions int      `json:"number_of_companions"`
	Companions         []string `json:"companions"`
}

// TravelDetail is one journey leg (train, flight, bus).
type TravelDetail struct {
	Journey             int    `json:"journey"`
	PNRNumber           string `json:"pnr_number"`
	ModeOfTransport     string `json:"mode_of_transport"`
	TrainOrFlightNumber string `json:"train_or_flight_number"`
	Date                string `json:"date"`
	Time                string `json:"time"`
	Route               string `json:"route"`
	Seat                string `json:"seat"`
	Fare                string `json:"fare"`
}

// AccommodationDetail is one hotel or homestay booking.
type AccommodationDetail struct {
	Hotel        string   `json:"hotel"`
	BookingID    string   `json:"booking_id"`
	Stay         string   `json:"stay"`
	RoomType     string   `json:"room_type"`
	Guests       string   `json:"guests"`
	TotalCost    string   `json:"total_cost"`
	KeyAmenities []string `json:"key_amenities"`
}

type CostSummary struct {
	Transportation string `json:"transportation"`
	Accommodation  string `json:"accommodation"`
	TotalTripCost  string `json:"total_trip_cost"`
}

type TripNotes struct {
	CriticalInfo        string `json:"critical_info"`
	SpecialRequirements string `json:"special_requirements"`
	ExtraDocs           string `json:"extra_docs"`
}

// StructuredSummary is the fixed schema structured-mode summaries conform to.
// Consumers rely on every field being present, so summaries must be
// Normalized before marshaling.
type StructuredSummary struct {
	TravelerInfo         []TravelerInfo        `json:"traveler_info"`
	TravelDetails        []TravelDetail        `json:"travel_details"`
	AccommodationDetails []AccommodationDetail `json:"accommodation_details"`
	CostSummary          CostSummary           `json:"cost_summary"`
	Notes                TripNotes             `json:"notes"`
	Overview             string                `json:"overview"`
}

// Normalize replaces nil slices with empty ones so fields the model left out
// still marshal as empty sequences instead of null.
func (s *StructuredSummary) Normalize() {
	if s.TravelerInfo == nil {
		s.TravelerInfo = []TravelerInfo{}
	}
	for i := range s.TravelerInfo {
		if s.TravelerInfo[i].Companions == nil {
			s.TravelerInfo[i].Companions = []string{}
		}
	}
	if s.TravelDetails == nil {
		s.TravelDetails = []TravelDetail{}
	}
	if s.AccommodationDetails == nil {
		s.AccommodationDetails = []AccommodationDetail{}
	}
	for i := range s.AccommodationDetails {
		if s.AccommodationDetails[i].KeyAmenities == nil {
			s.AccommodationDetails[i].KeyAmenities = []string{}
		}
	}
}

// SummaryMode selects the summarizer output shape.
type SummaryMode string

const (
	ModeNarrative  SummaryMode = "narrative"
	ModeStructured SummaryMode = "structured"
)

// SummarizeOptions tune one summarization run. Zero values mean "decide from
// the number of documents" (mode) and "use the configured default" (words).
type SummarizeOptions struct {
	Mode      SummaryMode
	MaxWords  int
	SourceIDs []string
}

// SummaryResult is the pipeline outcome. Exactly one of Narrative, Structured
// or RawSummary is populated; RawSummary means the model's structured output
// could not be parsed and is passed through verbatim.
type SummaryResult struct {
	Narrative  string
	Structured *StructuredSummary
	RawSummary string
}

// Degraded reports whether the result fell back to raw model output.
func (r SummaryResult) Degraded() bool {
	return r.RawSummary != ""
}

// MarshalJSON renders the populated variant: a plain string for narrative
// summaries, the schema object for structured ones, and a raw_summary
// wrapper for degraded results.
func (r SummaryResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Structured != nil:
		return json.Marshal(r.Structured)
	case r.RawSummary != "":
		return json.Marshal(map[string]string{"raw_summary": r.RawSummary})
	default:
		return json.Marshal(r.Narrative)
	}
}

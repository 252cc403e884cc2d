package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type SummaryResponse struct {
	Summary SummaryResult `json:"summary"`
}

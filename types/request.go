package types

import "encoding/json"

const (
	TypeWebsocketPing      = "ping"
	TypeWebsocketPong      = "pong"
	TypeWebsocketSummarize = "summarize"
	TypeWebsocketChunk     = "chunk"
	TypeWebsocketDone      = "done"
	TypeWebsocketError     = "error"
)

type WebsocketRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// WebSocketSummarizePayload carries raw text to be summarized with streamed
// output.
type WebSocketSummarizePayload struct {
	Text     string `json:"text"`
	MaxWords int    `json:"max_words"`
}

type WebSocketResponse struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

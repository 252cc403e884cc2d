package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/tieubaoca/docsum-be/types"
)

// WebSocketService streams narrative summaries chunk by chunk. Clients send
// a "summarize" message with raw text; each model chunk comes back as a
// "chunk" message, closed off with "done".
type WebSocketService struct {
	ai       AIService
	model    string
	upgrader websocket.Upgrader
}

func NewWebSocketService(ai AIService, model string) *WebSocketService {
	return &WebSocketService{
		ai:    ai,
		model: model,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	for {
		messageType, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			conn.WriteMessage(messageType, []byte("Error processing message"))
			continue
		}

		switch req.Type {
		case types.TypeWebsocketSummarize:
			var payload types.WebSocketSummarizePayload
			if err := json.Unmarshal(req.Payload, &payload); err != nil {
				s.writeError(conn, "Invalid summarize payload")
				continue
			}
			s.streamSummary(ctx, conn, payload)
		case types.TypeWebsocketPing:
			conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketPong})
		default:
			s.writeError(conn, "Invalid message type")
		}
	}
}

func (s *WebSocketService) streamSummary(ctx context.Context, conn *websocket.Conn, payload types.WebSocketSummarizePayload) {
	maxWords := payload.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	prompt := narrativePrompt(payload.Text, maxWords)

	streamer, ok := s.ai.(StreamGenerator)
	if !ok {
		// Model cannot stream; send the whole summary as one chunk.
		text, err := s.ai.Generate(ctx, prompt, s.model)
		if err != nil {
			s.writeError(conn, err.Error())
			return
		}
		conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketChunk, Payload: text})
		conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketDone})
		return
	}

	err := streamer.GenerateStream(ctx, prompt, s.model, func(chunk string) {
		conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketChunk, Payload: chunk})
	})
	if err != nil {
		s.writeError(conn, err.Error())
		return
	}
	conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketDone})
}

func (s *WebSocketService) writeError(conn *websocket.Conn, msg string) {
	conn.WriteJSON(types.WebSocketResponse{Type: types.TypeWebsocketError, Payload: msg})
}

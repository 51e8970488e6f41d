package serve

import (
	"encoding/json"

	"github.com/praetorian-inc/scribe/pkg/session"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "init" | "check" | "suggest" | "add_word" | ... | "close"
	Payload json.RawMessage `json:"payload"`
}

// InitPayload is the payload for "init" requests
type InitPayload = session.InitRequest

// CheckPayload is the payload for "check" requests
type CheckPayload struct {
	Text string `json:"text"`
}

// CheckBatchPayload is the payload for "check_batch" requests
type CheckBatchPayload struct {
	Items []session.Document `json:"items"`
}

// WordPayload is the payload for "suggest" and "add_word" requests
type WordPayload struct {
	Word string `json:"word"`
}

// ReadFilePayload is the payload for "read_file" requests
type ReadFilePayload struct {
	Path string `json:"path"`
}

// WriteFilePayload is the payload for "write_file" requests
type WriteFilePayload struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // request type, "ready" or "decode"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version string `json:"version"`
}

// InitData is the data field for "init" responses
type InitData struct {
	CustomWords int `json:"custom_words"`
}

// FileData is the data field for "read_file" responses
type FileData struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

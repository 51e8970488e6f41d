package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/praetorian-inc/scribe/pkg/session"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server answers editor requests against one session
type Server struct {
	sess    *session.Session
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server
func NewServer(sess *session.Session, in io.Reader, out io.Writer) *Server {
	return &Server{
		sess:    sess,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop. It returns nil when the input ends or
// a "close" request arrives, and the context error on cancellation.
func (s *Server) Run(ctx context.Context) error {
	// Send ready signal
	s.sendData("ready", ReadyData{Version: Version})

	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until the input closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					if errors.Is(err, io.EOF) {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case "init":
		s.handleInit(req.Payload)
	case "check":
		s.handleCheck(req.Payload)
	case "check_batch":
		s.handleCheckBatch(req.Payload)
	case "suggest":
		s.handleSuggest(req.Payload)
	case "add_word":
		s.handleAddWord(req.Payload)
	case "words":
		s.sendData(req.Type, s.sess.Words())
	case "read_file":
		s.handleReadFile(req.Payload)
	case "write_file":
		s.handleWriteFile(req.Payload)
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) handleInit(payload json.RawMessage) {
	var p InitPayload
	if !s.decode("init", payload, &p) {
		return
	}
	if err := s.sess.Init(p); err != nil {
		s.sendError("init", err.Error())
		return
	}
	s.sendData("init", InitData{CustomWords: len(s.sess.Words())})
}

func (s *Server) handleCheck(payload json.RawMessage) {
	var p CheckPayload
	if !s.decode("check", payload, &p) {
		return
	}
	matches, err := s.sess.Check(p.Text)
	if err != nil {
		s.sendError("check", err.Error())
		return
	}
	s.sendData("check", matches)
}

func (s *Server) handleCheckBatch(payload json.RawMessage) {
	var p CheckBatchPayload
	if !s.decode("check_batch", payload, &p) {
		return
	}
	result, err := s.sess.CheckBatch(p.Items)
	if err != nil {
		s.sendError("check_batch", err.Error())
		return
	}
	s.sendData("check_batch", result)
}

func (s *Server) handleSuggest(payload json.RawMessage) {
	var p WordPayload
	if !s.decode("suggest", payload, &p) {
		return
	}
	suggestions, err := s.sess.Suggest(p.Word)
	if err != nil {
		s.sendError("suggest", err.Error())
		return
	}
	s.sendData("suggest", suggestions)
}

func (s *Server) handleAddWord(payload json.RawMessage) {
	var p WordPayload
	if !s.decode("add_word", payload, &p) {
		return
	}
	if err := s.sess.AddWord(p.Word); err != nil {
		s.sendError("add_word", err.Error())
		return
	}
	s.sendData("add_word", nil)
}

func (s *Server) handleReadFile(payload json.RawMessage) {
	var p ReadFilePayload
	if !s.decode("read_file", payload, &p) {
		return
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		s.sendError("read_file", err.Error())
		return
	}
	s.sendData("read_file", FileData{Path: p.Path, Content: string(data)})
}

func (s *Server) handleWriteFile(payload json.RawMessage) {
	var p WriteFilePayload
	if !s.decode("write_file", payload, &p) {
		return
	}
	if p.Path == "" {
		s.sendError("write_file", "path is required")
		return
	}
	if err := os.WriteFile(p.Path, []byte(p.Content), 0644); err != nil {
		s.sendError("write_file", err.Error())
		return
	}
	s.sendData("write_file", nil)
}

// decode unmarshals a payload, reporting failure to the client.
func (s *Server) decode(reqType string, payload json.RawMessage, v any) bool {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if err := json.Unmarshal(payload, v); err != nil {
		s.sendError(reqType, fmt.Sprintf("invalid payload: %v", err))
		return false
	}
	return true
}

func (s *Server) sendData(reqType string, v any) {
	resp := Response{Success: true, Type: reqType}
	if v != nil {
		data, err := json.Marshal(v)
		if err != nil {
			s.sendError(reqType, err.Error())
			return
		}
		resp.Data = data
	}
	s.encoder.Encode(resp)
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}

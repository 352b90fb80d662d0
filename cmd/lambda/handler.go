package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/totaltranslate/internal"
	"codeberg.org/snonux/totaltranslate/internal/translation"
)

const (
	ActionTranslate = "translate"
	ActionDetect    = "detect"
)

// Request is the input of the function. Either Text or Texts is set.
type Request struct {
	Action string   `json:"action"`
	Text   string   `json:"text,omitempty"`
	Texts  []string `json:"texts,omitempty"`
	From   string   `json:"from,omitempty"`
	To     string   `json:"to,omitempty"`
}

// Response is the output of the function
type Response struct {
	RequestID    string   `json:"requestId"`
	Translation  string   `json:"translation,omitempty"`
	Translations []string `json:"translations,omitempty"`
	Language     string   `json:"language,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// Handler answers translation and detection requests with one engine
type Handler struct {
	engine *translation.Engine
	log    logrus.FieldLogger
}

// NewHandler creates a handler around engine
func NewHandler(engine *translation.Engine, log logrus.FieldLogger) *Handler {
	return &Handler{engine: engine, log: log}
}

// Handle processes a request. Request problems are reported in the
// response, as the engine itself never fails.
func (h *Handler) Handle(ctx context.Context, req Request) *Response {
	resp := &Response{RequestID: internal.NewRequestID()}
	log := h.log.WithFields(logrus.Fields{"request_id": resp.RequestID, "action": req.Action})

	if err := validateRequest(req); err != nil {
		log.WithError(err).Warn("Invalid request")
		resp.Error = err.Error()
		return resp
	}

	switch strings.ToLower(req.Action) {
	case ActionDetect:
		resp.Language = h.engine.DetectLanguage(ctx, req.Text)
	default:
		if req.Texts != nil {
			resp.Translations = make([]string, len(req.Texts))
			for i, text := range req.Texts {
				resp.Translations[i] = h.engine.TranslateText(ctx, text, req.From, req.To)
			}
		} else {
			resp.Translation = h.engine.TranslateText(ctx, req.Text, req.From, req.To)
		}
	}

	log.Debug("Request handled")
	return resp
}

func validateRequest(req Request) error {
	switch strings.ToLower(req.Action) {
	case "", ActionTranslate:
		if req.Text != "" && req.Texts != nil {
			return fmt.Errorf("text and texts are mutually exclusive")
		}
		return nil
	case ActionDetect:
		if req.Texts != nil {
			return fmt.Errorf("detect takes a single text")
		}
		if strings.TrimSpace(req.Text) == "" {
			return fmt.Errorf("text is required")
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", req.Action)
	}
}

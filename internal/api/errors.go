package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// StatusError is a non-2xx response, carrying the most specific message the
// server offered.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Code, e.Message)
}

// errorBody covers the shapes the API uses for failures:
// {erro:{issues:[{path,message}]}}, {message}, {detalhes:[...]}.
type errorBody struct {
	Erro *struct {
		Issues []struct {
			Path    []string `json:"path"`
			Message string   `json:"message"`
		} `json:"issues"`
	} `json:"erro"`
	Message  string   `json:"message"`
	Detalhes []string `json:"detalhes"`
}

// statusError extracts the best available message, falling back to the raw
// body and finally the status text.
func statusError(code int, raw []byte) *StatusError {
	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		if eb.Erro != nil && len(eb.Erro.Issues) > 0 {
			msgs := make([]string, 0, len(eb.Erro.Issues))
			for _, is := range eb.Erro.Issues {
				if len(is.Path) > 0 {
					msgs = append(msgs, strings.Join(is.Path, ".")+": "+is.Message)
				} else {
					msgs = append(msgs, is.Message)
				}
			}
			return &StatusError{Code: code, Message: strings.Join(msgs, "; ")}
		}
		if eb.Message != "" {
			return &StatusError{Code: code, Message: eb.Message}
		}
		if len(eb.Detalhes) > 0 {
			return &StatusError{Code: code, Message: strings.Join(eb.Detalhes, "; ")}
		}
	}
	if s := strings.TrimSpace(string(raw)); s != "" {
		return &StatusError{Code: code, Message: s}
	}
	return &StatusError{Code: code, Message: http.StatusText(code)}
}

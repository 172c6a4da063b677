package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/AayushiWani/TY-Miniproject/util"
	"github.com/AayushiWani/TY-Miniproject/util/tracing"
)

// ServerResponse is the wire envelope for every handler. Failure bodies
// are {message, success:false}; success bodies carry the entity under
// its historical key ({group}, {groups}, {messages}, {data}, ...).
type ServerResponse struct {
	Message    string      `json:"message,omitempty"`
	Success    bool        `json:"success"`
	Status     string      `json:"-"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
	Group      interface{} `json:"group,omitempty"`
	Groups     interface{} `json:"groups,omitempty"`
	Messages   interface{} `json:"messages,omitempty"`
	Tool       interface{} `json:"tool,omitempty"`
	Tools      interface{} `json:"tools,omitempty"`
	User       interface{} `json:"user,omitempty"`
}

// respondWithError logs the underlying error server-side and returns the
// envelope for the client. Internal detail stays in the logs.
func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Printf("[%s] %s: %v", tc.RequestID, message, err)
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Println(message, err)
	}

	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}

	respByte, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, resp.StatusCode)
		return
	}
	writeJSONResponse(w, respByte, resp.StatusCode)
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		log.Println("error writing response body:", err)
	}
}

package indicator

import (
	"encoding/json"
	"net/http"

	"indicators/internal/domain"
)

// Response is what every operation returns, whether it succeeded or not.
// Body always holds a JSON document.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

type recordBody struct {
	Message string        `json:"message"`
	Data    domain.Record `json:"data"`
}

type errorBody struct {
	Error string `json:"error"`
}

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":      "*",
	"Access-Control-Allow-Credentials": "true",
}

func recordStored(message string, record domain.Record) Response {
	return jsonResponse(http.StatusOK, recordBody{Message: message, Data: record}, nil)
}

func failure(err error) Response {
	return jsonResponse(http.StatusInternalServerError, errorBody{Error: err.Error()}, nil)
}

func jsonResponse(status int, payload any, headers map[string]string) Response {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorBody{Error: "failed to encode response: " + err.Error()})
		headers = nil
	}
	return Response{StatusCode: status, Headers: headers, Body: string(body)}
}

package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the JSON body written for a failed API request.
type Response struct {
	Error       string            `json:"error"`
	Code        string            `json:"code,omitempty"`
	Type        ErrorType         `json:"type,omitempty"`
	Suggestions []ErrorSuggestion `json:"suggestions,omitempty"`
}

// WriteJSON writes err as a JSON error body. RefErrors choose their own
// status; anything else is a 500 with a generic message.
func WriteJSON(w http.ResponseWriter, err error) int {
	status := http.StatusInternalServerError
	body := Response{Error: "internal server error", Code: ErrCodeInternalError, Type: ErrorTypeInternal}

	var re *RefError
	if errors.As(err, &re) {
		status = re.HTTPStatus()
		body = Response{Error: re.Message, Code: re.Code, Type: re.Type}
	}
	body.Suggestions = SuggestionsOf(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
	return status
}

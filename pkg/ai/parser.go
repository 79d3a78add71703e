package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse is wrapped by every parse failure of a model answer.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrNoJSON is returned when a model answer holds no JSON object.
	ErrNoJSON = fmt.Errorf("%w: no json object", ErrMalformedResponse)
)

// ExtractJSON returns the text between the first '{' and the last '}'.
// Models often wrap the object in prose or code fences.
func ExtractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

// DecodeJSON extracts the JSON object from text and unmarshals it into v.
func DecodeJSON(text string, v interface{}) error {
	raw, err := ExtractJSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

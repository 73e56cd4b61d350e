// Package responseformat encodes HTTP responses as JSON or MessagePack
// based on the request's format query parameter.
package responseformat

import (
	"encoding/json"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Formatter handles encoding and writing responses in JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WriteResponse writes the response in the appropriate format based on the query parameter.
// JSON is the default format. MessagePack is used when format=msgpack is specified
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, data any, headers map[string]string) error {
	for k, v := range headers {
		w.Header().Set(k, v)
	}

	// Always set CORS header so browser-based renderers can fetch
	// datasets cross-origin.
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if req.URL.Query().Get("format") == "msgpack" {
		return f.writeMsgPack(w, data)
	}
	return f.writeJSON(w, data)
}

// WriteError writes a JSON error body with the given status code
func (f *Formatter) WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (f *Formatter) writeJSON(w http.ResponseWriter, data any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(data)
}

func (f *Formatter) writeMsgPack(w http.ResponseWriter, data any) error {
	w.Header().Set("Content-Type", "application/x-msgpack")
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}

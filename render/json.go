package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/segvso/seq"
)

// Decoded is the JSON form of a decoded record line.
type Decoded struct {
	Title   string        `json:"title,omitempty"`
	Clauses []seq.Decoded `json:"clauses"`
}

// JSONRenderer writes decoded records as JSON to a writer, one object per
// line.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render decodes the tagged group and writes it.
func (r *JSONRenderer) Render(title, group string) error {
	return json.NewEncoder(r.W).Encode(Decoded{
		Title:   title,
		Clauses: seq.DecodeGroup(group),
	})
}

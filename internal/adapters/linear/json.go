package linear

import (
	"encoding/json"
	"io"
	"os"

	"go.trai.ch/changed/internal/core/domain"
)

// JSONRenderer implements ports.Renderer by encoding the report as a single JSON document.
type JSONRenderer struct {
	w io.Writer
}

// NewJSONRenderer creates a new JSONRenderer writing to w, or stdout when w is nil.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	if w == nil {
		w = os.Stdout
	}
	return &JSONRenderer{w: w}
}

// Render writes the report as indented JSON.
func (r *JSONRenderer) Render(report *domain.Report) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

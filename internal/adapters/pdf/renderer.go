package pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"
)

var ErrNoLines = errors.New("nothing to render")

// Renderer lays out text lines as centered rows on a single A4 page.
type Renderer struct {
	fontFamily string
	fontSize   float64
}

func NewRenderer() *Renderer {
	return &Renderer{fontFamily: "Arial", fontSize: 12}
}

func (r *Renderer) Render(lines ...string) ([]byte, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont(r.fontFamily, "", r.fontSize)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, line := range lines {
		doc.CellFormat(200, 10, tr(line), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Slide is one page of a generated deck.
type Slide struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// SlideDeck is a parsed assistant deck: a title slide followed by content
// slides.
type SlideDeck struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// SlidesExporter renders slide decks as landscape PDF pages, one page per
// slide.
type SlidesExporter struct{}

// NewSlidesExporter constructs a slides exporter.
func NewSlidesExporter() *SlidesExporter {
	return &SlidesExporter{}
}

// Render produces the deck PDF. The first page carries the deck title
// alone, mirroring the title-slide convention of the assistant output.
func (e *SlidesExporter) Render(deck SlideDeck) ([]byte, error) {
	if deck.Title == "" && len(deck.Slides) == 0 {
		return nil, fmt.Errorf("slides require a title or at least one slide")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(20, 30, 20)

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 28)
	pdf.SetY(80)
	pdf.MultiCell(0, 14, deck.Title, "", "C", false)

	for _, slide := range deck.Slides {
		pdf.AddPage()
		pdf.SetFont("Arial", "B", 20)
		pdf.MultiCell(0, 12, slide.Title, "", "L", false)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 14)
		for _, bullet := range slide.Bullets {
			pdf.MultiCell(0, 9, "- "+bullet, "", "L", false)
			pdf.Ln(2)
		}
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render slides: %w", err)
	}
	return buf.Bytes(), nil
}

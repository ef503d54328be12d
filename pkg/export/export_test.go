package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Student", "Status"},
		Rows: []map[string]string{
			{"Student": "1000", "Status": "PRESENT"},
			{"Student": "1001", "Status": "LATE"},
		},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Student,Status", lines[0])
	assert.Equal(t, "1001,LATE", lines[2])
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	data := Dataset{
		Headers: []string{"Student", "Status"},
		Rows:    []map[string]string{{"Student": "1000", "Status": "ABSENT"}},
	}

	out, err := NewPDFExporter().Render(data, "attendance report")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestPDFExporterBreaksLongTables(t *testing.T) {
	rows := make([]map[string]string, 120)
	for i := range rows {
		rows[i] = map[string]string{"Student": "1000", "Status": "PRESENT"}
	}

	out, err := NewPDFExporter().Render(Dataset{Headers: []string{"Student", "Status"}, Rows: rows}, "")
	require.NoError(t, err)
	assert.Greater(t, strings.Count(string(out), "/Page"), 1)
}

func TestSlidesExporterRender(t *testing.T) {
	deck := SlideDeck{
		Title: "Technical education",
		Slides: []Slide{
			{Title: "Why it matters", Bullets: []string{"jobs", "skills"}},
			{Title: "Next steps", Bullets: []string{"labs"}},
		},
	}

	out, err := NewSlidesExporter().Render(deck)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}

func TestSlidesExporterRejectsEmptyDeck(t *testing.T) {
	_, err := NewSlidesExporter().Render(SlideDeck{})
	assert.Error(t, err)
}

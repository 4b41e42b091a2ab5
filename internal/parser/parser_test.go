package parser

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Helpers
// ============================================================================

// buildDOCX assembles a minimal valid DOCX archive in memory with the given
// document.xml body content.
func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	doc, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)

	rels, err := w.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)

	require.NoError(t, w.Close())
	return buf.Bytes()
}

// buildPDF assembles a minimal valid one-page PDF containing the given text.
// Object byte offsets are recorded while writing so the xref table and
// trailer are always consistent with the body.
func buildPDF(t *testing.T, text string) []byte {
	t.Helper()

	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

// ============================================================================
// PDF Tests
// ============================================================================

func TestPDFExtractsSinglePageText(t *testing.T) {
	text, err := PDF(buildPDF(t, "BP 120/80"))
	require.NoError(t, err)
	assert.Contains(t, text, "BP 120/80")
}

func TestPDFRejectsGarbage(t *testing.T) {
	_, err := PDF([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestPDFRejectsEmptyInput(t *testing.T) {
	_, err := PDF(nil)
	assert.Error(t, err)
}

// ============================================================================
// DOCX Tests
// ============================================================================

func TestDOCXExtractsParagraphsInOrder(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>Blood Pressure</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>BP 120/80</w:t></w:r></w:p>`)

	text, err := DOCX(data)
	require.NoError(t, err)
	assert.Equal(t, "Blood Pressure\nBP 120/80\n", text)
}

func TestDOCXJoinsRunsWithinParagraph(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>Hemoglobin: </w:t></w:r><w:r><w:t xml:space="preserve">13.5 g/dL</w:t></w:r></w:p>`)

	text, err := DOCX(data)
	require.NoError(t, err)
	assert.Equal(t, "Hemoglobin: 13.5 g/dL\n", text)
}

func TestDOCXUnescapesEntities(t *testing.T) {
	data := buildDOCX(t, `<w:p><w:r><w:t>Na&amp;K &lt;140</w:t></w:r></w:p>`)

	text, err := DOCX(data)
	require.NoError(t, err)
	assert.Equal(t, "Na&K <140\n", text)
}

func TestDOCXRejectsGarbage(t *testing.T) {
	_, err := DOCX([]byte("not a zip archive"))
	assert.Error(t, err)
}

func TestDOCXRejectsZipWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("unrelated.txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = DOCX(buf.Bytes())
	assert.Error(t, err)
}

// ============================================================================
// Plain Text Tests
// ============================================================================

func TestPlainTextPassesValidUTF8Through(t *testing.T) {
	assert.Equal(t, "BP 120/80 stable", PlainText([]byte("BP 120/80 stable")))
}

func TestPlainTextDropsInvalidBytes(t *testing.T) {
	data := []byte{'B', 'P', 0xff, 0xfe, ' ', '1', '2', '0'}
	assert.Equal(t, "BP 120", PlainText(data))
}

func TestPlainTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", PlainText(nil))
}

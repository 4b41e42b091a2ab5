// Package parser converts uploaded document bytes into plain text.
//
// All extractors work on in-memory buffers, never raise panics to the
// caller, and fail only when the document as a whole cannot be parsed.
package parser

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// PDF extracts text from PDF bytes, concatenating per-page text in page
// order. A page that yields no text (or whose extraction fails) contributes
// an empty string; an error is returned only when the document itself is
// unreadable.
func PDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse failure: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		sb.WriteString(pageText(reader.Page(i)))
	}
	return sb.String(), nil
}

// pageText absorbs per-page extraction errors and panics; a bad page is an
// empty page, not a failed document.
func pageText(p pdf.Page) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()

	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

var (
	docxParagraph = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>|<w:p/>`)
	docxRun       = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)
	docxUnescape  = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")
)

// DOCX extracts text from DOCX bytes, emitting each paragraph's text
// followed by a newline, in document order. Only a document that cannot be
// opened as a DOCX archive produces an error.
func DOCX(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docx parse failure: %v", r)
		}
	}()

	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	// GetContent exposes the raw WordprocessingML of word/document.xml;
	// paragraphs are <w:p> elements and their text lives in <w:t> runs.
	var sb strings.Builder
	for _, para := range docxParagraph.FindAllString(doc.Editable().GetContent(), -1) {
		for _, run := range docxRun.FindAllStringSubmatch(para, -1) {
			sb.WriteString(docxUnescape.Replace(run[1]))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// PlainText decodes bytes as UTF-8, dropping invalid sequences instead of
// failing. Used for text/plain uploads.
func PlainText(data []byte) string {
	return strings.ToValidUTF8(string(data), "")
}

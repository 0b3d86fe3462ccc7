package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrDecode reports that the input bytes are not a readable document.
var ErrDecode = errors.New("document decode failed")

// Document is the raw output of text extraction, immutable once produced.
type Document struct {
	Text      string
	PageCount int
	Info      map[string]string
}

// Extractor converts raw document bytes into plain text. It is injected into
// the analysis pipeline so the parsing and scoring core can be exercised with
// synthetic text in tests.
type Extractor interface {
	Extract(ctx context.Context, data []byte) (Document, error)
}

// PDFExtractor extracts text from PDF bytes.
// Library used: github.com/ledongthuc/pdf.
type PDFExtractor struct{}

// Extract decodes the PDF and returns its plain text, page count, and the
// trailer Info dictionary. Undecodable input yields an error wrapping
// ErrDecode and no partial Document.
func (PDFExtractor) Extract(ctx context.Context, data []byte) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return Document{
		Text:      buf.String(),
		PageCount: pdfReader.NumPage(),
		Info:      documentInfo(pdfReader),
	}, nil
}

var infoKeys = []string{"Title", "Author", "Subject", "Creator", "Producer", "CreationDate", "ModDate"}

func documentInfo(r *pdf.Reader) map[string]string {
	out := make(map[string]string)
	info := r.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return out
	}
	for _, key := range infoKeys {
		v := info.Key(key)
		if v.Kind() != pdf.String {
			continue
		}
		if s := strings.TrimSpace(v.RawString()); s != "" {
			out[key] = s
		}
	}
	return out
}

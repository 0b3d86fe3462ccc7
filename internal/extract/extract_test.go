package extract

import (
	"context"
	"errors"
	"testing"
)

func TestExtractRejectsGarbageBytes(t *testing.T) {
	var ex PDFExtractor
	_, err := ex.Extract(context.Background(), []byte("this is not a pdf"))
	if err == nil {
		t.Fatal("expected decode error for garbage bytes")
	}
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got: %v", err)
	}
}

func TestExtractRejectsEmptyInput(t *testing.T) {
	var ex PDFExtractor
	_, err := ex.Extract(context.Background(), nil)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got: %v", err)
	}
}

func TestExtractHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ex PDFExtractor
	_, err := ex.Extract(ctx, []byte("%PDF-1.4"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	content := []byte("%PDF-1.4 test content")
	key, size, mimeType, err := store.Save(ctx, "resume.pdf", bytes.NewReader(content))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("size: got %d, want %d", size, len(content))
	}
	if mimeType == "" {
		t.Error("mime type should be detected")
	}
	if !strings.HasSuffix(key, "_resume.pdf") {
		t.Errorf("storage key: got %q", key)
	}

	rc, err := store.Open(ctx, key)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("stored bytes differ from input")
	}
}

func TestSaveRandomizesKeys(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	first, _, _, err := store.Save(ctx, "resume.pdf", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, _, _, err := store.Save(ctx, "resume.pdf", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Error("same file name should produce distinct storage keys")
	}
}

func TestSaveRejectsTraversalNames(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "../escape.pdf", strings.NewReader("x")); err == nil {
		t.Error("expected error for traversal file name")
	}
}

func TestOpenRejectsTraversalKeys(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../secret", "/etc/passwd"} {
		if _, err := store.Open(context.Background(), key); err == nil {
			t.Errorf("key %q: expected error", key)
		}
	}
}

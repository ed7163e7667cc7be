package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDirLoaderLoadsFilesInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := DirLoader{Dir: dir}.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("Load() returned %d docs, want 2", len(docs))
	}
	if docs[0].Title != "a" || docs[0].Body != "first" {
		t.Errorf("docs[0] = %+v, want title=a body=first", docs[0])
	}
	if docs[1].Title != "b" || docs[1].Body != "second" {
		t.Errorf("docs[1] = %+v, want title=b body=second", docs[1])
	}
}

func TestDirLoaderMissingDirReturnsMalformedCorpus(t *testing.T) {
	_, err := DirLoader{Dir: filepath.Join(t.TempDir(), "nope")}.Load()
	if err == nil {
		t.Fatal("Load() on a missing directory returned nil error, want one")
	}
	if !errors.Is(err, ErrMalformedCorpus) {
		t.Errorf("Load() error = %v, want it to wrap ErrMalformedCorpus", err)
	}
}

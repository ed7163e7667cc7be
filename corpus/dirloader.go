package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirLoader loads one Document per plain-text file in a directory,
// using the file's base name (without extension) as the title and its
// full contents as the body. It is a minimal Loader implementation for
// the demo CLI; the SGML/structured corpus parsing spec.md §1 places
// out of core is not this loader's concern — callers with a
// structured source bring their own Loader.
type DirLoader struct {
	Dir string
}

// Load reads every regular file directly under Dir, in sorted
// filename order, assigning ids 1..n in that order.
func (d DirLoader) Load() ([]Document, error) {
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	docs := make([]Document, 0, len(names))
	for i, name := range names {
		body, err := os.ReadFile(filepath.Join(d.Dir, name))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
		}
		title := strings.TrimSuffix(name, filepath.Ext(name))
		docs = append(docs, Document{
			ID:    DocId(i + 1),
			Title: title,
			Body:  string(body),
		})
	}

	return docs, nil
}

// Package persist implements the opaque, gob-based serialization
// contract for every built index artifact (spec.md §6): the primary
// inverted index, its document and length maps, the tolerance
// indexes, the champion index, and the phrase index all round-trip
// through a single Snapshot value.
package persist

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/covrom/newsearch/champion"
	"github.com/covrom/newsearch/corpus"
	"github.com/covrom/newsearch/index"
	"github.com/covrom/newsearch/phrase"
	"github.com/covrom/newsearch/tolerance"
)

// Snapshot bundles every persisted artifact named in spec.md §6:
// inv_index, documents, doc_lengths (all inside index.Index),
// k_gram_index, dictionary, soundex (inside tolerance.Index),
// high_low_index (champion.Index), and n_gram_index (phrase.Index).
type Snapshot struct {
	Primary   *index.Index
	Tolerance *tolerance.Index
	Champion  *champion.Index
	Phrase    *phrase.Index
}

func init() {
	gob.Register(corpus.DocId(0))
}

// Write serializes a Snapshot to w. The wire format is unspecified and
// owned entirely by this package — callers only need Write/Read to
// round-trip, per the Persistence contract.
func Write(w io.Writer, snap *Snapshot) error {
	return gob.NewEncoder(w).Encode(snap)
}

// Read deserializes a Snapshot previously produced by Write.
func Read(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Marshal is a convenience wrapper around Write for callers that want
// a byte slice directly (e.g. to hand to an external cache or blob
// store — still out of core per spec.md §1).
func Marshal(snap *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal is the inverse of Marshal.
func Unmarshal(data []byte) (*Snapshot, error) {
	return Read(bytes.NewReader(data))
}

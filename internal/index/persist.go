package index

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/lox/chinesepoker/internal/fileutil"
	"github.com/lox/chinesepoker/poker"
)

// indexFile is the on-disk gob layout.
type indexFile struct {
	Arity  int
	Scores map[poker.CardSet]poker.Score
}

// Save writes the index to path atomically. Readers of the path never see a
// partially written index.
func (ix *Index) Save(path string) error {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(indexFile{Arity: ix.arity, Scores: ix.scores}); err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved index. A wrong arity or an entry count that
// does not match the full deck is a corrupted or incomplete index and is
// rejected: a partial index must never masquerade as a complete one.
func Load(path string, arity int) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", path, err)
	}

	var file indexFile
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode index %s: %w", path, err)
	}
	if file.Arity != arity {
		return nil, fmt.Errorf("index %s has arity %d, want %d", path, file.Arity, arity)
	}

	ix := &Index{arity: file.Arity, scores: file.Scores}
	if !ix.Complete() {
		return nil, fmt.Errorf("index %s is incomplete: %d entries", path, ix.Size())
	}
	return ix, nil
}

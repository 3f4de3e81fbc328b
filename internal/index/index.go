// Package index precomputes scores for every 3-card and 5-card combination
// of the 52-card deck. An Index is built once, never mutated afterwards, and
// is safe to share read-only across concurrent games.
package index

import (
	"fmt"
	"math/bits"

	"github.com/lox/chinesepoker/internal/combin"
	"github.com/lox/chinesepoker/poker"
)

// Entry counts for a complete index over the full deck.
const (
	ThreeCardCombinations = 22100   // C(52,3)
	FiveCardCombinations  = 2598960 // C(52,5)
)

// Index is an immutable mapping from canonical card sets of one arity to
// their evaluation scores.
type Index struct {
	arity  int
	scores map[poker.CardSet]poker.Score
}

// Build enumerates all C(52, arity) combinations of the full deck exactly
// once and scores each. Arity must be 3 or 5. The build trades a one-time
// enumeration cost for O(1) lookups on the hot arrangement path.
func Build(arity int) (*Index, error) {
	deck := make([]poker.Card, 52)
	for i := range deck {
		deck[i] = poker.CardFromID(i)
	}
	return BuildForCards(deck, arity)
}

// BuildForCards scores every arity-sized subset of the given cards. Passing
// the full deck yields a complete index; a smaller pool yields a partial
// index covering just that pool, which is what hand-local tooling and tests
// use.
func BuildForCards(cards []poker.Card, arity int) (*Index, error) {
	if arity != 3 && arity != 5 {
		return nil, fmt.Errorf("index: unsupported arity %d", arity)
	}
	if len(cards) < arity {
		return nil, fmt.Errorf("index: %d cards cannot form %d-card combinations", len(cards), arity)
	}

	scores := make(map[poker.CardSet]poker.Score, combin.Count(len(cards), arity))
	combo := make([]poker.Card, arity)

	seq := combin.NewSequence(len(cards), arity)
	for pattern, ok := seq.Next(); ok; pattern, ok = seq.Next() {
		n := 0
		for rest := pattern; rest != 0; rest &= rest - 1 {
			combo[n] = cards[bits.TrailingZeros64(rest)]
			n++
		}
		scores[poker.NewCardSet(combo)] = poker.Evaluate(combo)
	}

	return &Index{arity: arity, scores: scores}, nil
}

// Lookup returns the score for a canonical card set. The second return is
// false when the set is absent; callers decide whether that means skip (a
// partial index) or a corrupted index.
func (ix *Index) Lookup(set poker.CardSet) (poker.Score, bool) {
	score, ok := ix.scores[set]
	return score, ok
}

// Arity returns the combination size this index covers.
func (ix *Index) Arity() int {
	return ix.arity
}

// Size returns the number of stored combinations.
func (ix *Index) Size() int {
	return len(ix.scores)
}

// ScoreCounts returns how many combinations map to each distinct score.
func (ix *Index) ScoreCounts() map[poker.Score]int {
	counts := make(map[poker.Score]int)
	for _, score := range ix.scores {
		counts[score]++
	}
	return counts
}

// Complete reports whether the index covers every combination of the full
// deck for its arity.
func (ix *Index) Complete() bool {
	switch ix.arity {
	case 3:
		return len(ix.scores) == ThreeCardCombinations
	case 5:
		return len(ix.scores) == FiveCardCombinations
	default:
		return false
	}
}

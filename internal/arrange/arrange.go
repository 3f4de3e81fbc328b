// Package arrange enumerates the legal splits of a 13-card hand into front,
// middle and back sub-hands.
package arrange

import (
	"fmt"
	"math/bits"
	"sort"
	"strings"

	"github.com/lox/chinesepoker/internal/combin"
	"github.com/lox/chinesepoker/internal/index"
	"github.com/lox/chinesepoker/poker"
)

// Arrangement is a partition of one 13-card hand into a 3-card front and two
// 5-card sub-hands, each carrying its score. Immutable once produced.
type Arrangement struct {
	Front  []poker.Card
	Middle []poker.Card
	Back   []poker.Card

	FrontScore  poker.Score
	MiddleScore poker.Score
	BackScore   poker.Score
}

// String renders the three rows with their scores.
func (a Arrangement) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Front  (%f): %s\n", float64(a.FrontScore), joinCards(a.Front))
	fmt.Fprintf(&sb, "Middle (%f): %s\n", float64(a.MiddleScore), joinCards(a.Middle))
	fmt.Fprintf(&sb, "Back   (%f): %s", float64(a.BackScore), joinCards(a.Back))
	return sb.String()
}

func joinCards(cards []poker.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}

const handMask = (1 << poker.HandSize) - 1

// Enumerate produces every legal (front, middle, back) split of a 13-card
// hand: front strictly below middle, middle no greater than back. Card sets
// absent from an index are skipped rather than failed, so partial indices
// simply contribute fewer candidates. The enumeration order is fixed by the
// ascending bit-pattern order over the ID-sorted hand.
func Enumerate(hand []poker.Card, idx3, idx5 *index.Index) ([]Arrangement, error) {
	if len(hand) != poker.HandSize {
		return nil, fmt.Errorf("arrange: hand must contain %d cards, got %d", poker.HandSize, len(hand))
	}

	cards := make([]poker.Card, len(hand))
	copy(cards, hand)
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID() < cards[j].ID() })

	// Score every 3-subset and 5-subset of the hand once up front; the inner
	// loop then only does map hits on hand-position bit patterns.
	threeScores := subsetScores(cards, 3, idx3)
	fiveScores := subsetScores(cards, 5, idx5)

	var arrangements []Arrangement
	for _, front := range orderedPatterns(threeScores) {
		frontScore := threeScores[front]
		remaining := handMask ^ front

		middleSeq := combin.NewSequence(10, 5)
		for packed, ok := middleSeq.Next(); ok; packed, ok = middleSeq.Next() {
			middle := scatter(packed, remaining)
			middleScore, ok := fiveScores[middle]
			if !ok {
				continue
			}
			if middleScore.Compare(frontScore) <= 0 {
				continue
			}

			back := remaining ^ middle
			backScore, ok := fiveScores[back]
			if !ok {
				continue
			}
			if middleScore.Compare(backScore) > 0 {
				continue
			}

			arrangements = append(arrangements, Arrangement{
				Front:       pick(cards, front),
				Middle:      pick(cards, middle),
				Back:        pick(cards, back),
				FrontScore:  frontScore,
				MiddleScore: middleScore,
				BackScore:   backScore,
			})
		}
	}

	return arrangements, nil
}

// subsetScores maps each r-subset bit pattern over hand positions to its
// indexed score. Patterns whose card set is missing from the index are left
// out (skip, not fail).
func subsetScores(cards []poker.Card, r int, ix *index.Index) map[uint64]poker.Score {
	scores := make(map[uint64]poker.Score, combin.Count(len(cards), r))
	combo := make([]poker.Card, r)

	seq := combin.NewSequence(len(cards), r)
	for pattern, ok := seq.Next(); ok; pattern, ok = seq.Next() {
		n := 0
		for rest := pattern; rest != 0; rest &= rest - 1 {
			combo[n] = cards[bits.TrailingZeros64(rest)]
			n++
		}
		if score, ok := ix.Lookup(poker.NewCardSet(combo)); ok {
			scores[pattern] = score
		}
	}
	return scores
}

// orderedPatterns returns the map keys in ascending pattern order to keep
// the enumeration reproducible.
func orderedPatterns(scores map[uint64]poker.Score) []uint64 {
	patterns := make([]uint64, 0, len(scores))
	for p := range scores {
		patterns = append(patterns, p)
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i] < patterns[j] })
	return patterns
}

// scatter expands a bit pattern over the set positions of mask: bit i of
// packed selects the i-th set bit of mask.
func scatter(packed, mask uint64) uint64 {
	var out uint64
	dst := 0
	for src := 0; src < poker.HandSize; src++ {
		if mask&(1<<src) != 0 {
			if packed&(1<<dst) != 0 {
				out |= 1 << src
			}
			dst++
		}
	}
	return out
}

// pick collects the cards at the set positions of pattern.
func pick(cards []poker.Card, pattern uint64) []poker.Card {
	out := make([]poker.Card, 0, bits.OnesCount64(pattern))
	for rest := pattern; rest != 0; rest &= rest - 1 {
		out = append(out, cards[bits.TrailingZeros64(rest)])
	}
	return out
}

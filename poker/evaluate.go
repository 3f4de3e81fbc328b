package poker

import (
	"fmt"
	"sort"
)

// Evaluate scores an unordered 3-card or 5-card hand. Any other arity is a
// programmer error and panics.
func Evaluate(cards []Card) Score {
	switch len(cards) {
	case 5:
		return EvaluateFive(cards)
	case 3:
		return EvaluateThree(cards)
	default:
		panic(fmt.Sprintf("evaluate: hand must contain 3 or 5 cards, got %d", len(cards)))
	}
}

// EvaluateFive scores a 5-card hand by standard poker ranking.
func EvaluateFive(cards []Card) Score {
	if len(cards) != 5 {
		panic(fmt.Sprintf("evaluate: expected 5 cards, got %d", len(cards)))
	}

	values := make([]int, 5)
	for i, c := range cards {
		values[i] = c.Value()
	}
	sort.Ints(values)

	counts := rankCounts(cards)
	flush := isFlush(cards)
	straight, high := straightHigh(values)

	if flush && straight {
		if high == 14 && values[0] == 10 {
			return NewScore(RoyalFlush)
		}
		return NewScore(StraightFlush, high)
	}
	if quad, ok := rankWithCount(counts, 4); ok {
		kicker, _ := rankWithCount(counts, 1)
		return NewScore(FourOfAKind, quad, kicker)
	}
	if trip, ok := rankWithCount(counts, 3); ok {
		if pair, ok := rankWithCount(counts, 2); ok {
			return NewScore(FullHouse, trip, pair)
		}
	}
	if flush {
		return NewScore(Flush, descending(values)...)
	}
	if straight {
		return NewScore(Straight, high)
	}
	if trip, ok := rankWithCount(counts, 3); ok {
		return NewScore(ThreeOfAKind, append([]int{trip}, ranksWithCount(counts, 1)...)...)
	}
	pairs := ranksWithCount(counts, 2)
	if len(pairs) == 2 {
		kicker, _ := rankWithCount(counts, 1)
		return NewScore(TwoPair, pairs[0], pairs[1], kicker)
	}
	if len(pairs) == 1 {
		return NewScore(Pair, append([]int{pairs[0]}, ranksWithCount(counts, 1)...)...)
	}
	return NewScore(HighCard, descending(values)...)
}

// EvaluateThree scores a 3-card front hand. Straights and flushes do not
// count; only trips, pairs and high cards are possible. The category numbers
// stay on the 5-card scale (trips are 4, not 3).
func EvaluateThree(cards []Card) Score {
	if len(cards) != 3 {
		panic(fmt.Sprintf("evaluate: expected 3 cards, got %d", len(cards)))
	}

	counts := rankCounts(cards)
	if trip, ok := rankWithCount(counts, 3); ok {
		return NewScore(ThreeOfAKind, trip)
	}
	if pair, ok := rankWithCount(counts, 2); ok {
		kicker, _ := rankWithCount(counts, 1)
		return NewScore(Pair, pair, kicker)
	}
	values := make([]int, 3)
	for i, c := range cards {
		values[i] = c.Value()
	}
	sort.Ints(values)
	return NewScore(HighCard, descending(values)...)
}

// straightHigh reports whether the ascending-sorted values form a straight
// and its high card. The wheel (A-2-3-4-5) ranks below the six-high straight
// and reports 5.
func straightHigh(values []int) (bool, int) {
	consecutive := true
	for i := 0; i+1 < len(values); i++ {
		if values[i+1]-values[i] != 1 {
			consecutive = false
			break
		}
	}
	if consecutive {
		return true, values[len(values)-1]
	}
	if values[0] == 2 && values[1] == 3 && values[2] == 4 && values[3] == 5 && values[4] == 14 {
		return true, 5
	}
	return false, 0
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// rankCounts returns occurrences per card value (index 2-14).
func rankCounts(cards []Card) [15]int {
	var counts [15]int
	for _, c := range cards {
		counts[c.Value()]++
	}
	return counts
}

// rankWithCount returns the highest value occurring exactly n times.
func rankWithCount(counts [15]int, n int) (int, bool) {
	for v := 14; v >= 2; v-- {
		if counts[v] == n {
			return v, true
		}
	}
	return 0, false
}

// ranksWithCount returns all values occurring exactly n times, descending.
func ranksWithCount(counts [15]int, n int) []int {
	var ranks []int
	for v := 14; v >= 2; v-- {
		if counts[v] == n {
			ranks = append(ranks, v)
		}
	}
	return ranks
}

func descending(sorted []int) []int {
	out := make([]int, len(sorted))
	for i, v := range sorted {
		out[len(sorted)-1-i] = v
	}
	return out
}

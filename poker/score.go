package poker

import (
	"fmt"
	"strconv"
	"strings"
)

// Category is the poker hand class used as the primary ranking key. The
// numbering is shared between 5-card and 3-card hands so bonus detection by
// category number works for both arities; 3-card hands can only be
// ThreeOfAKind, Pair or HighCard (no TwoPair gap filler exists).
type Category int

const (
	HighCard      Category = 1
	Pair          Category = 2
	TwoPair       Category = 3
	ThreeOfAKind  Category = 4
	Straight      Category = 5
	Flush         Category = 6
	FullHouse     Category = 7
	FourOfAKind   Category = 8
	StraightFlush Category = 9
	RoyalFlush    Category = 10
)

// String returns a human-readable category description.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Score is the totally-ordered rank of an evaluated hand, encoded as a
// decimal number: the integer part is the category (1-10) and the fraction
// packs each tiebreaker rank as a fixed two-digit group. Downstream bonus
// logic recovers the category by truncation, so the encoding must stay
// bit-for-bit compatible with stored indices. Numeric comparison of two
// Scores is equivalent to comparing (category, tiebreakers) lexicographically.
type Score float64

// NewScore packs a category and its tiebreaker ranks into a Score. The
// decimal string round-trip reproduces the stored encoding exactly.
func NewScore(category Category, tiebreakers ...int) Score {
	if len(tiebreakers) == 0 {
		return Score(category)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.", category)
	for _, t := range tiebreakers {
		fmt.Fprintf(&sb, "%02d", t)
	}
	v, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		panic(fmt.Sprintf("score: bad tiebreakers %v: %v", tiebreakers, err))
	}
	return Score(v)
}

// Category returns the hand class encoded in the integer part.
func (s Score) Category() Category {
	return Category(int(s))
}

// Compare returns 1 if s is stronger than o, -1 if weaker, 0 on a tie.
// Ties are possible across different suits with identical rank composition.
func (s Score) Compare(o Score) int {
	switch {
	case s > o:
		return 1
	case s < o:
		return -1
	default:
		return 0
	}
}

// String renders the score with category name, e.g. "Full House (7.0902)".
func (s Score) String() string {
	return fmt.Sprintf("%s (%s)", s.Category(), strconv.FormatFloat(float64(s), 'f', -1, 64))
}

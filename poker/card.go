package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The order (clubs, diamonds, hearts, spades)
// fixes the 0-51 card ID layout and must not change: persisted indices
// depend on it.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter suit token.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank with aces high
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank token. Tens render as "10", not "T"; the
// historical hand format uses the three-character form.
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card. Immutable once constructed.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the token representation, e.g. "AS" or "10D".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Value returns the numeric comparison value (2-14, aces high).
func (c Card) Value() int {
	return int(c.Rank)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ID returns the canonical card identifier in 0-51: suit*13 + rank index.
func (c Card) ID() int {
	return int(c.Suit)*13 + int(c.Rank) - 2
}

// CardFromID converts a canonical identifier back to a card.
func CardFromID(id int) Card {
	return Card{Rank: Rank(id%13 + 2), Suit: Suit(id / 13)}
}

var rankTokens = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "J": Jack, "Q": Queen, "K": King, "A": Ace,
}

var suitTokens = map[byte]Suit{
	'C': Clubs, 'D': Diamonds, 'H': Hearts, 'S': Spades,
}

// ParseCard parses a token like "AS" or "10D" into a card. The ten rank is
// the only three-character token.
func ParseCard(token string) (Card, error) {
	if len(token) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", token)
	}
	rank, ok := rankTokens[strings.ToUpper(token[:len(token)-1])]
	if !ok {
		return Card{}, fmt.Errorf("invalid rank in card %q", token)
	}
	suit, ok := suitTokens[strings.ToUpper(token)[len(token)-1]]
	if !ok {
		return Card{}, fmt.Errorf("invalid suit in card %q", token)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseHand parses a space-separated list of card tokens. Duplicate cards
// are rejected.
func ParseHand(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	var seen CardSet
	for _, f := range fields {
		card, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		if seen.Contains(card) {
			return nil, fmt.Errorf("duplicate card %q", f)
		}
		seen.Add(card)
		cards = append(cards, card)
	}
	return cards, nil
}

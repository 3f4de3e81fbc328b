package poker

import "math/bits"

// CardSet represents an unordered set of cards as a bitset over canonical
// card IDs. It is the order-independent key used by the combination index.
type CardSet uint64

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.ID()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<card.ID()) != 0
}

// Count returns the number of cards in the set
func (cs CardSet) Count() int {
	return bits.OnesCount64(uint64(cs))
}

// Cards expands the set back into cards in ascending ID order.
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Count())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		cards = append(cards, CardFromID(bits.TrailingZeros64(rest)))
	}
	return cards
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards []Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

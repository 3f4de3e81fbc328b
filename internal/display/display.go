// Package display renders hands, arrangements and payoffs for the CLI.
package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/chinesepoker/internal/arrange"
	"github.com/lox/chinesepoker/poker"
)

// Styles contains styling for game display
type Styles struct {
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Winner    lipgloss.Style
	Loser     lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Score     lipgloss.Style
	Label     lipgloss.Style
}

// NewStyles creates the default display styles.
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loser: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		CardRed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		CardBlack: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
	}
}

// Card renders a single card with suit coloring.
func (s *Styles) Card(c poker.Card) string {
	if c.IsRed() {
		return s.CardRed.Render(c.String())
	}
	return s.CardBlack.Render(c.String())
}

// Hand renders a hand sorted by descending value.
func (s *Styles) Hand(cards []poker.Card) string {
	sorted := make([]poker.Card, len(cards))
	copy(sorted, cards)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Value() != sorted[j].Value() {
			return sorted[i].Value() > sorted[j].Value()
		}
		return sorted[i].Suit > sorted[j].Suit
	})

	tokens := make([]string, len(sorted))
	for i, c := range sorted {
		tokens[i] = s.Card(c)
	}
	return strings.Join(tokens, " ")
}

// Arrangement renders the three rows of an arrangement with category names.
func (s *Styles) Arrangement(a arrange.Arrangement) string {
	var sb strings.Builder
	sb.WriteString(s.row("Front ", a.Front, a.FrontScore))
	sb.WriteString("\n")
	sb.WriteString(s.row("Middle", a.Middle, a.MiddleScore))
	sb.WriteString("\n")
	sb.WriteString(s.row("Back  ", a.Back, a.BackScore))
	return sb.String()
}

func (s *Styles) row(label string, cards []poker.Card, score poker.Score) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = s.Card(c)
	}
	return fmt.Sprintf("%s %s %s",
		s.Label.Render(label),
		strings.Join(tokens, " "),
		s.Score.Render(fmt.Sprintf("(%s)", score.Category())))
}

// Payoffs renders one line per player, highlighting winners and losers.
func (s *Styles) Payoffs(payoffs []float64) string {
	var sb strings.Builder
	for i, p := range payoffs {
		line := fmt.Sprintf("Player %d: %+.0f", i+1, p)
		switch {
		case p > 0:
			line = s.Winner.Render(line)
		case p < 0:
			line = s.Loser.Render(line)
		}
		sb.WriteString(line)
		if i < len(payoffs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

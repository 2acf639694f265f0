// Package render draws boards and cards for the terminal.
package render

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/notscrum/internal/models"
)

// DefaultLaneWidth is the inner width of a lane column
const DefaultLaneWidth = 28

// Options controls the layout
type Options struct {
	LaneWidth int
	// MarkdownStyle is a glamour standard style ("dark", "light", "notty", ...).
	// Empty selects one from the terminal.
	MarkdownStyle string
}

func (o Options) laneWidth() int {
	if o.LaneWidth <= 0 {
		return DefaultLaneWidth
	}
	return o.LaneWidth
}

// BoardView is a board with its lanes and each lane's cards
type BoardView struct {
	Board *models.Board
	Lanes []*models.Lane
	Cards map[int][]*models.Card // by lane ID
}

// Board renders the lanes side by side in position order
func Board(v BoardView, opts Options) string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(v.Board.Name))
	b.WriteString("\n")
	if v.Board.Description != "" {
		b.WriteString(mutedStyle.Render(v.Board.Description))
		b.WriteString("\n\n")
	}

	if len(v.Lanes) == 0 {
		b.WriteString(mutedStyle.Render("No lanes"))
		return b.String()
	}

	lanes := make([]string, 0, len(v.Lanes))
	for _, lane := range v.Lanes {
		lanes = append(lanes, Lane(lane, v.Cards[lane.ID], opts))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, lanes...))
	return b.String()
}

// Lane renders one lane as a bordered column of card summaries
func Lane(lane *models.Lane, cards []*models.Card, opts Options) string {
	width := opts.laneWidth()

	content := laneTitleStyle.Render(fmt.Sprintf("%s (%d)", truncate(lane.Name, width-5), len(cards)))
	if len(cards) == 0 {
		content += "\n" + mutedStyle.Render("No cards")
	}
	for _, c := range cards {
		content += "\n" + cardSummary(c, width-2)
	}

	return laneStyle.Width(width).Render(content)
}

func cardSummary(c *models.Card, width int) string {
	lines := []string{truncate(c.Title, width)}
	if c.DueDate != nil {
		lines = append(lines, labelStyle.Render("due "+c.DueDate.Format("2006-01-02")))
	}
	lines = append(lines, labelStyle.Render(fmt.Sprintf("#%d", c.ID)))

	return cardStyle.
		BorderForeground(lipgloss.Color(cardAccent(c.Color))).
		Render(strings.Join(lines, "\n"))
}

// Card renders a card with its description as markdown
func Card(c *models.Card, opts Options) string {
	width := opts.laneWidth() * 2

	var b strings.Builder
	b.WriteString(boardTitleStyle.Foreground(lipgloss.Color(cardAccent(c.Color))).Render(c.Title))
	b.WriteString("\n")

	meta := []string{fmt.Sprintf("card #%d", c.ID), fmt.Sprintf("lane #%d", c.LaneID), fmt.Sprintf("position %d", c.Position)}
	if c.DueDate != nil {
		meta = append(meta, "due "+c.DueDate.Format("2006-01-02"))
	}
	b.WriteString(labelStyle.Render(strings.Join(meta, " · ")))
	b.WriteString("\n\n")
	b.WriteString(Markdown(c.Description, width, opts.MarkdownStyle))
	return b.String()
}

// Markdown renders text through glamour, falling back to the raw text when
// rendering fails. Empty text renders a placeholder.
func Markdown(text string, width int, style string) string {
	if strings.TrimSpace(text) == "" {
		return mutedStyle.Render("No description")
	}

	renderer, err := markdownRenderer(width, style)
	if err != nil {
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}

type rendererKey struct {
	width int
	style string
}

// glamour renderers are expensive to build
var rendererCache sync.Map // rendererKey -> *glamour.TermRenderer

func markdownRenderer(width int, style string) (*glamour.TermRenderer, error) {
	key := rendererKey{width, style}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}
	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 1 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

package render

import (
	"fmt"
	"io"
	"strings"

	"kalah/game"

	"github.com/muesli/termenv"
)

var colors = [2]string{"2", "4"} // player0 green, player1 blue

// Printer writes boards to a terminal. Colours are dropped when the writer
// is not a terminal.
type Printer struct {
	out *termenv.Output
}

func NewPrinter(w io.Writer, opts ...termenv.OutputOption) *Printer {
	return &Printer{out: termenv.NewOutput(w, opts...)}
}

// Board prints b with the same layout as game.Board.String.
func Board(w io.Writer, b game.Board) error {
	return NewPrinter(w).Board(b)
}

func (p *Printer) Board(b game.Board) error {
	return p.print(b, -1, -1)
}

// Sowing prints the intermediate board of s with the last sown pit highlighted.
func (p *Printer) Sowing(s *game.Sowing) error {
	side, pit := s.Pit()
	return p.print(s.Board(), side, pit)
}

func (p *Printer) print(b game.Board, side game.Player, pit int) error {
	h := b.Houses()
	cell := func(player game.Player, i int) string {
		style := p.out.String(fmt.Sprintf("%3d", b[player][i])).Foreground(p.out.Color(colors[player]))
		if i == h {
			style = style.Bold()
		}
		if player == side && i == pit {
			style = style.Reverse()
		}
		return style.String()
	}

	var sb strings.Builder
	sb.WriteString("    ")
	for i := h - 1; i >= 0; i-- {
		sb.WriteString(cell(game.Player1, i))
	}
	sb.WriteByte('\n')
	sb.WriteString(cell(game.Player1, h))
	sb.WriteString(" " + strings.Repeat(" ", 3*h) + " ")
	sb.WriteString(cell(game.Player0, h))
	sb.WriteByte('\n')
	sb.WriteString("    ")
	for i := 0; i < h; i++ {
		sb.WriteString(cell(game.Player0, i))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(p.out, sb.String())
	return err
}

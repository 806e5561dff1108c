package term

import (
	"fmt"
	"strings"

	pcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	resetColor  = "\x1b[0m"
	deadCell    = "  "
	liveCell    = "██"
)

// levelColors are 256-colour codes for undecorated live cells and levels 1–4.
var levelColors = [...]int{250, 117, 78, 221, 203}

// Frame renders a board and a status line as a full-screen ANSI frame.
func Frame(g *pcore.Grid, status string) string {
	var b strings.Builder
	b.Grow(g.Rows()*(g.Cols()*len(liveCell)+16) + len(status) + 16)
	b.WriteString(clearScreen)
	views := life.Describe(g)
	for r := 0; r < g.Rows(); r++ {
		for _, v := range views[r*g.Cols() : (r+1)*g.Cols()] {
			if !v.Alive {
				b.WriteString(deadCell)
				continue
			}
			fmt.Fprintf(&b, "\x1b[38;5;%dm%s", levelColors[v.Level], liveCell)
		}
		b.WriteString(resetColor)
		b.WriteByte('\n')
	}
	b.WriteString(status)
	b.WriteByte('\n')
	return b.String()
}

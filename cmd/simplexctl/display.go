package main

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"

	"github.com/rigcore/simplex/simplex"
)

// printWeights renders a two-column, rune-width-aligned table of every
// shape's resulting weight, skipping shapes that landed at exactly zero
// so an idle rig prints only its neutral shape.
func printWeights(s *simplex.Solver, weights []float64) {
	nameWidth := 0
	for i, sh := range s.Shapes {
		if weights[i] == 0 && i != 0 {
			continue
		}
		if w := runewidth.StringWidth(sh.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for i, sh := range s.Shapes {
		if weights[i] == 0 && i != 0 {
			continue
		}
		pad := nameWidth - runewidth.StringWidth(sh.Name)
		line := sh.Name + spaces(pad) + "  " + strconv.FormatFloat(weights[i], 'f', 4, 64)
		if i == 0 {
			pterm.FgGray.Println(line)
			continue
		}
		fmt.Println(line)
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

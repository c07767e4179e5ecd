package hint

import (
	"fmt"
	"strings"

	"sudoku_engine_go/internal/types"
)

// coachPrompt pins down the reply format. The service must answer with a
// bare JSON object so parseSuggestion can decode it directly.
const coachPrompt = `You are a sudoku coach. You are given a 9x9 sudoku board. Rows and columns are numbered 0 to 8, top to bottom and left to right. Suggest the single most helpful next step for the player without giving away more than one cell.

Respond with only a JSON object, no surrounding text, in this exact shape:
{"strategy": "<short strategy name>", "explanation": "<one or two sentences>", "cells": [{"row": 0, "col": 0}]}

"cells" lists the cells the player should look at, using 0-based coordinates. If you cannot find a useful step, respond with {"strategy": "", "explanation": "", "cells": []}.`

// buildPrompt renders the board state for the model. Clues and player
// moves are sent separately so the coach never suggests changing a clue.
func buildPrompt(req Request) string {
	var b strings.Builder
	b.WriteString("Initial clues (dots are empty cells):\n")
	writeGrid(&b, &req.Initial)
	b.WriteString("\nCurrent board including the player's entries:\n")
	writeGrid(&b, &req.Current)
	b.WriteString("\nWhat should the player look at next?")
	return b.String()
}

func writeGrid(b *strings.Builder, g *types.Grid) {
	for r := 0; r < types.Size; r++ {
		for c := 0; c < types.Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			if v := g.Get(r, c); v == types.Empty {
				b.WriteByte('.')
			} else {
				fmt.Fprintf(b, "%d", v)
			}
		}
		b.WriteByte('\n')
	}
}

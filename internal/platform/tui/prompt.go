package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// promptLines returns the dialog shown over the playfield for a stage, or nil.
func promptLines(s stage, title string, score int) []string {
	switch s {
	case stageStart:
		return []string{
			title,
			"",
			"Space to flap",
			"Avoid the pipes",
			"Don't hit the top or bottom",
			"",
			"Start Game? (y/n)",
		}
	case stagePaused:
		return []string{"PAUSED", "", "Press P to resume"}
	case stageGameOver:
		return []string{
			"Game Over!",
			fmt.Sprintf("Your score: %d", score),
			"",
			"Play Again? (y/n)",
		}
	}
	return nil
}

// drawDialog draws a centered message box with one line per entry.
func drawDialog(dst *core.Screen, lines []string) {
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightWhite
		}
		dst.DrawTextColor(x, boxY+1+i, l, c)
	}
}

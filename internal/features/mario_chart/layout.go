package mario_chart

import (
	"math"
	"strconv"
	"strings"
)

const (
	minWidth     = 700
	chartHeight  = 160
	groundY      = 120
	barStep      = 12 // horizontal distance between bar origins
	barOffsetX   = 10
	barWidth     = 8
	maxBarHeight = 48

	spriteSize       = 12
	spriteTravelPad  = 60 // sprite stops this far short of the right edge
	loopSeconds      = 8
	jumpEvery        = 6
	jumpHeight       = -28
	footerOffsetY    = 6
	groundLineOffset = 12
	groundLineHeight = 8
)

// CanvasWidth is max(700, 12 per record).
func CanvasWidth(records int) int {
	if w := records * barStep; w > minWidth {
		return w
	}
	return minWidth
}

// BarHeight scales count against maxCount into [0, 48]. maxCount below 1 is treated as 1.
func BarHeight(count, maxCount int) int {
	if maxCount < 1 {
		maxCount = 1
	}
	return int(math.Round(float64(count) / float64(maxCount) * maxBarHeight))
}

// BarX is the left edge of bar i.
func BarX(i int) int {
	return barOffsetX + i*barStep
}

// JumpKeyTimes returns n evenly spaced key times in [0,1) plus a closing "1".
func JumpKeyTimes(n int) []string {
	out := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, strconv.FormatFloat(float64(i)/float64(n), 'f', 4, 64))
	}
	return append(out, "1")
}

// JumpValues returns n translate values plus a closing "0 0".
// Every sixth step (0, 6, 12, ...) is a jump; counts are not consulted.
func JumpValues(n int) []string {
	out := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, "0 "+strconv.Itoa(JumpOffset(i)))
	}
	return append(out, "0 0")
}

// JumpOffset is the vertical sprite offset at step i.
func JumpOffset(step int) int {
	if step%jumpEvery == 0 {
		return jumpHeight
	}
	return 0
}

func joinSteps(steps []string) string {
	return strings.Join(steps, ";")
}

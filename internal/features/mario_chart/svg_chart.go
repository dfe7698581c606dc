package mario_chart

// Animated SVG: contribution bars, a ground line and a sprite that walks
// left to right every 8 seconds, hopping on a fixed cadence

import (
	"fmt"
	"strconv"

	"mario-graph/internal/features/contributions"
	"mario-graph/internal/svg"
)

const (
	backgroundColor = "#07112a"
	footerFormat    = "Mario Contribution — @%s"
	barTitleFormat  = "%s — %d contributions"
)

var styleRules = []string{
	".bar { fill: #6fcf97; }",
	".ground { fill: #2b2b2b; opacity: 0.1; }",
	".mario-body { fill: #d32f2f; }",
	".mario-hat { fill: #b71c1c; }",
	".mario-face { fill: #ffd7a6; }",
	".shadow { fill: rgba(0,0,0,0.2); }",
	".small { font: 10px sans-serif; fill: #999; }",
}

// Footer is the caption used under the chart and for published previews.
func Footer(login string) string {
	return fmt.Sprintf(footerFormat, login)
}

// RenderSVG builds the chart document. Identical input gives identical bytes.
func RenderSVG(days []contributions.DayRecord, login string) []byte {
	return BuildDocument(days, login).Bytes()
}

// BuildDocument returns the element tree behind RenderSVG.
func BuildDocument(days []contributions.DayRecord, login string) *svg.Document {
	width := CanvasWidth(len(days))
	doc := svg.NewDocument(width, chartHeight)

	style := svg.El("style")
	for _, rule := range styleRules {
		style.Text(rule)
	}

	doc.Root.Append(
		style,
		svg.El("rect", svg.A("width", "100%"), svg.A("height", "100%"), svg.A("fill", backgroundColor)),
		barsGroup(days),
		svg.El("rect",
			svg.A("x", 0),
			svg.A("y", groundY+groundLineOffset),
			svg.A("width", width),
			svg.A("height", groundLineHeight),
			svg.A("class", "ground"),
		),
		spriteGroup(width, len(days)),
		svg.El("text",
			svg.A("x", barOffsetX),
			svg.A("y", chartHeight-footerOffsetY),
			svg.A("class", "small"),
		).Text(Footer(login)),
	)
	return doc
}

func barsGroup(days []contributions.DayRecord) *svg.Element {
	g := svg.El("g", svg.A("id", "bars"), svg.A("transform", "translate(0,0)"))
	maxCount := contributions.MaxCount(days)

	for i, d := range days {
		h := BarHeight(d.Count, maxCount)
		g.Append(svg.El("rect",
			svg.A("class", "bar"),
			svg.A("x", BarX(i)),
			svg.A("y", groundY-h),
			svg.A("width", barWidth),
			svg.A("height", h),
			svg.A("rx", 2),
		).Append(svg.El("title").Text(fmt.Sprintf(barTitleFormat, d.Date, d.Count))))
	}
	return g
}

// spriteGroup nests walk (outer) and jump (inner) transforms around the
// sprite shapes so both translations add up.
func spriteGroup(width, steps int) *svg.Element {
	dur := strconv.Itoa(loopSeconds) + "s"

	walk := svg.El("animateTransform",
		svg.A("attributeName", "transform"),
		svg.A("attributeType", "XML"),
		svg.A("type", "translate"),
		svg.A("from", "0 0"),
		svg.A("to", strconv.Itoa(width-spriteTravelPad)+" 0"),
		svg.A("dur", dur),
		svg.A("repeatCount", "indefinite"),
		svg.A("calcMode", "linear"),
	)

	jump := svg.El("animateTransform",
		svg.A("attributeName", "transform"),
		svg.A("attributeType", "XML"),
		svg.A("type", "translate"),
		svg.A("dur", dur),
		svg.A("repeatCount", "indefinite"),
		svg.A("keyTimes", joinSteps(JumpKeyTimes(steps))),
		svg.A("values", joinSteps(JumpValues(steps))),
		svg.A("calcMode", "discrete"),
	)

	sprite := svg.El("g",
		svg.A("id", "marioSprite"),
		svg.A("transform", fmt.Sprintf("translate(0, %d)", groundY-spriteSize)),
	).Append(
		svg.El("ellipse", svg.A("cx", spriteSize/2), svg.A("cy", spriteSize+4), svg.A("rx", 6), svg.A("ry", 2), svg.A("class", "shadow")),
		svg.El("rect", svg.A("x", 0), svg.A("y", 0), svg.A("width", spriteSize), svg.A("height", 8), svg.A("rx", 2), svg.A("class", "mario-body")),
		svg.El("rect", svg.A("x", 0), svg.A("y", -4), svg.A("width", spriteSize), svg.A("height", 4), svg.A("rx", 1), svg.A("class", "mario-hat")),
		svg.El("rect", svg.A("x", 2), svg.A("y", 2), svg.A("width", 3), svg.A("height", 3), svg.A("rx", 1), svg.A("class", "mario-face")),
	)

	return svg.El("g", svg.A("id", "mario"), svg.A("transform", "translate(0,0)")).Append(
		svg.El("g", svg.A("id", "marioJump")).Append(sprite, jump),
		walk,
	)
}

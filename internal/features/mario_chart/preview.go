package mario_chart

// Static PNG of the first animation frame, for places that cannot play SVG

import (
	"bytes"
	"fmt"
	"image"

	"mario-graph/internal/features/contributions"

	"github.com/fogleman/gg"
)

// RenderPreview draws the chart with the sprite at its starting position.
func RenderPreview(days []contributions.DayRecord, login string) image.Image {
	width := CanvasWidth(len(days))
	dc := gg.NewContext(width, chartHeight)

	dc.SetHexColor(backgroundColor)
	dc.Clear()

	maxCount := contributions.MaxCount(days)
	dc.SetHexColor("#6fcf97")
	for i, d := range days {
		h := BarHeight(d.Count, maxCount)
		if h == 0 {
			continue
		}
		dc.DrawRoundedRectangle(float64(BarX(i)), float64(groundY-h), barWidth, float64(h), 2)
		dc.Fill()
	}

	// #2b2b2b at 10% opacity
	dc.SetRGBA255(0x2b, 0x2b, 0x2b, 26)
	dc.DrawRectangle(0, groundY+groundLineOffset, float64(width), groundLineHeight)
	dc.Fill()

	drawSprite(dc, 0, float64(groundY-spriteSize+JumpOffset(0)))

	dc.SetHexColor("#999999")
	dc.DrawString(Footer(login), barOffsetX, chartHeight-footerOffsetY)

	return dc.Image()
}

func drawSprite(dc *gg.Context, x, y float64) {
	dc.Push()
	defer dc.Pop()
	dc.Translate(x, y)

	dc.SetRGBA(0, 0, 0, 0.2)
	dc.DrawEllipse(spriteSize/2, spriteSize+4, 6, 2)
	dc.Fill()

	dc.SetHexColor("#d32f2f")
	dc.DrawRoundedRectangle(0, 0, spriteSize, 8, 2)
	dc.Fill()

	dc.SetHexColor("#b71c1c")
	dc.DrawRoundedRectangle(0, -4, spriteSize, 4, 1)
	dc.Fill()

	dc.SetHexColor("#ffd7a6")
	dc.DrawRoundedRectangle(2, 2, 3, 3, 1)
	dc.Fill()
}

// EncodePreviewPNG renders the preview and returns it PNG-encoded.
func EncodePreviewPNG(days []contributions.DayRecord, login string) ([]byte, error) {
	img := RenderPreview(days, login)

	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode preview png: %w", err)
	}
	return buf.Bytes(), nil
}

package mario_chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview_Size(t *testing.T) {
	img := RenderPreview(makeDays(make([]int, 80)...), "alice")

	assert.Equal(t, 960, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestRenderPreview_DrawsTallestBar(t *testing.T) {
	img := RenderPreview(makeDays(0, 10), "alice")

	// Middle of the second bar, well inside its 48px body.
	r, g, b, _ := img.At(BarX(1)+4, groundY-20).RGBA()
	assert.Equal(t, uint32(0x6f), r>>8)
	assert.Equal(t, uint32(0xcf), g>>8)
	assert.Equal(t, uint32(0x97), b>>8)
}

func TestEncodePreviewPNG(t *testing.T) {
	data, err := EncodePreviewPNG(makeDays(1, 2, 3), "alice")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 700, img.Bounds().Dx())
}

package feb

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// DeployIcon composites a form's deploy sprite onto a transparent 128x128
// canvas at the fixed offset BCU pastes it at.
func DeployIcon(sprite []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(sprite))
	if err != nil {
		return nil, fmt.Errorf("feb: decoding deploy icon: %w", err)
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	draw.Draw(canvas, src.Bounds().Add(image.Pt(9, 21)), src, image.Point{}, draw.Over)
	return encodePNG(canvas)
}

// DisplayIcon composites a form's upgrade-screen icon onto a transparent
// 512x128 canvas: the source is scaled 3.5x, pasted at (13,1), and the
// triangular notch the in-game chrome punches out of the icon's corner
// ((146,112) to (118,70)) is cleared to fully transparent afterward.
func DisplayIcon(sprite []byte) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(sprite))
	if err != nil {
		return nil, fmt.Errorf("feb: decoding display icon: %w", err)
	}
	b := src.Bounds()
	scaled := image.NewNRGBA(image.Rect(0, 0, int(float64(b.Dx())*3.5), int(float64(b.Dy())*3.5)))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, xdraw.Over, nil)

	canvas := image.NewNRGBA(image.Rect(0, 0, 512, 128))
	draw.Draw(canvas, scaled.Bounds().Add(image.Pt(13, 1)), scaled, image.Point{}, draw.Over)
	punchTriangle(canvas)
	return encodePNG(canvas)
}

// punchTriangle clears the right-triangle region from (146,112) up to
// (118,70) to (0,0,0,0), row by row, each row narrower than the last —
// the same shrinking-width loop BCUForm.load_display_icon runs to carve
// the upgrade-arrow notch out of a composited icon.
func punchTriangle(img *image.NRGBA) {
	const (
		x0, y0 = 146, 112
		x1, y1 = 118, 70
	)
	rows := y0 - y1
	if rows <= 0 {
		return
	}
	width := x0 - x1
	for row := 0; row < rows; row++ {
		y := y0 - row
		rowWidth := width - row
		if rowWidth < 0 {
			rowWidth = 0
		}
		for x := x0 - rowWidth; x <= x0; x++ {
			img.Set(x, y, color.NRGBA{})
		}
	}
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("feb: encoding icon png: %w", err)
	}
	return buf.Bytes(), nil
}

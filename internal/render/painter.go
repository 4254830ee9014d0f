//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// BoardPainter owns the image and pixel buffer used to draw a board. The
// shell creates one per window and releases it with Dispose.
type BoardPainter struct {
	layout Layout
	pal    Palette
	pw, ph int
	img    *ebiten.Image
	buf    []byte
}

// NewBoardPainter allocates a painter sized for board under layout.
func NewBoardPainter(board Board, layout Layout, pal Palette) *BoardPainter {
	pw, ph := layout.Pixels(board.Size())
	return &BoardPainter{
		layout: layout,
		pal:    pal,
		pw:     pw,
		ph:     ph,
		img:    ebiten.NewImage(pw, ph),
		buf:    make([]byte, 4*pw*ph),
	}
}

// Blit rasterizes the board and draws it centred on dst.
func (bp *BoardPainter) Blit(dst *ebiten.Image, board Board) {
	if bp.img == nil {
		return
	}
	if !RasterizeBoard(bp.buf, board, bp.layout, bp.pal) {
		return
	}
	bp.img.WritePixels(bp.buf)

	bounds := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64((bounds.Dx()-bp.pw)/2), float64((bounds.Dy()-bp.ph)/2))
	dst.DrawImage(bp.img, op)
}

// Size returns the pixel dimensions of the board image.
func (bp *BoardPainter) Size() (int, int) { return bp.pw, bp.ph }

// Dispose releases the backing image. The painter draws nothing afterwards.
func (bp *BoardPainter) Dispose() {
	if bp.img != nil {
		bp.img.Dispose()
		bp.img = nil
	}
}

package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/impose"
)

// Options controls preview rendering.
type Options struct {
	// Width is the output image width in pixels. Height follows the sheet's
	// aspect ratio. Default 600.
	Width int
	// Oversample is the supersampling factor used before downscaling.
	// Default 2.
	Oversample int
}

var (
	sheetFill   = color.RGBA{255, 255, 255, 255}
	sheetBorder = color.RGBA{60, 60, 60, 255}
	cellBorder  = color.RGBA{170, 170, 170, 255}
	pageFill    = color.RGBA{205, 220, 240, 255}
	pageBorder  = color.RGBA{90, 120, 170, 255}
	labelColor  = color.RGBA{40, 40, 40, 255}
)

// RenderSheet draws a schematic of one sheet plan.
func RenderSheet(sheet impose.Sheet, opts Options) (image.Image, error) {
	if !sheet.Size.IsPositive() {
		return nil, fmt.Errorf("sheet size %gx%g must be positive", sheet.Size.Width, sheet.Size.Height)
	}
	if opts.Width <= 0 {
		opts.Width = 600
	}
	if opts.Oversample <= 0 {
		opts.Oversample = 2
	}

	bigW := opts.Width * opts.Oversample
	scale := float64(bigW) / sheet.Size.Width
	bigH := int(sheet.Size.Height*scale + 0.5)

	img := image.NewRGBA(image.Rect(0, 0, bigW, bigH))
	draw.Draw(img, img.Bounds(), &image.Uniform{sheetFill}, image.Point{}, draw.Src)
	strokeRect(img, img.Bounds(), sheetBorder)

	for i, pl := range sheet.Placements {
		cell := toImageRect(pl.Cell, sheet.Size.Height, scale)
		strokeRect(img, cell, cellBorder)

		page := toImageRect(pageFootprint(pl), sheet.Size.Height, scale)
		draw.Draw(img, page, &image.Uniform{pageFill}, image.Point{}, draw.Src)
		strokeRect(img, page, pageBorder)

		drawLabel(img, page, fmt.Sprintf("%d", pl.Page+1))
		_ = i
	}

	if opts.Oversample == 1 {
		return img, nil
	}

	outH := int(float64(opts.Width) * sheet.Size.Height / sheet.Size.Width)
	if outH < 1 {
		outH = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, outH))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return out, nil
}

// WritePNG renders a sheet schematic and encodes it as PNG.
func WritePNG(w io.Writer, sheet impose.Sheet, opts Options) error {
	img, err := RenderSheet(sheet, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// pageFootprint returns the region the scaled page covers on the sheet. A
// degenerate footprint falls back to the cell so invalid placements remain
// visible.
func pageFootprint(pl impose.Placement) geom.Rect {
	r := geom.Rect{
		X:      pl.Offset.X,
		Y:      pl.Offset.Y,
		Width:  pl.Cell.Width - 2*(pl.Offset.X-pl.Cell.X),
		Height: pl.Cell.Height - 2*(pl.Offset.Y-pl.Cell.Y),
	}
	if !r.IsValid() {
		return pl.Cell
	}
	return r
}

// toImageRect converts a bottom-origin sheet rectangle to top-origin image
// pixels.
func toImageRect(r geom.Rect, sheetHeight, scale float64) image.Rectangle {
	x0 := int(r.X*scale + 0.5)
	y0 := int((sheetHeight-r.Top())*scale + 0.5)
	x1 := int(r.Right()*scale + 0.5)
	y1 := int((sheetHeight-r.Y)*scale + 0.5)
	return image.Rect(x0, y0, x1, y1)
}

// strokeRect draws a one pixel border just inside the rectangle.
func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// drawLabel centers a small text label in the rectangle.
func drawLabel(img *image.RGBA, r image.Rectangle, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()

	x := r.Min.X + (r.Dx()-width)/2
	y := r.Min.Y + (r.Dy()+face.Ascent)/2
	if x < r.Min.X || y < r.Min.Y || y > r.Max.Y {
		return
	}

	d := font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{labelColor},
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

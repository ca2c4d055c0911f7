package document

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/impose"
)

// PDFCPUBackend implements Backend using pdfcpu.
type PDFCPUBackend struct {
	conf *model.Configuration
}

// NewPDFCPUBackend creates a backend with the default pdfcpu configuration.
func NewPDFCPUBackend() *PDFCPUBackend {
	return &PDFCPUBackend{conf: model.NewDefaultConfiguration()}
}

// Geometry implements Backend.
func (b *PDFCPUBackend) Geometry(ctx context.Context, path string) ([]PageGeometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	pdfCtx, err := pdfapi.ReadValidateAndOptimize(f, b.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return nil, err
	}

	pages := make([]PageGeometry, 0, pdfCtx.PageCount)
	for i := 1; i <= pdfCtx.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		_, _, inh, err := pdfCtx.PageDict(i, false)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		if inh.MediaBox == nil {
			return nil, fmt.Errorf("page %d has no media box", i)
		}

		pg := PageGeometry{
			MediaBox: rectFromPDF(inh.MediaBox),
			Rotation: inh.Rotate,
		}
		if inh.CropBox != nil {
			crop := rectFromPDF(inh.CropBox)
			pg.CropBox = &crop
		}
		pages = append(pages, pg)
	}

	return pages, nil
}

// Impose implements Backend. Each sheet becomes one output page: the first
// placement is rendered by extracting the source page and rewriting its
// content stream, further placements are overlaid as PDF stamps, and the
// finished sheets are merged in order.
func (b *PDFCPUBackend) Impose(ctx context.Context, src string, sheets []impose.Sheet, out string) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to impose")
	}

	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	srcCtx, err := pdfapi.ReadValidateAndOptimize(f, b.conf)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := srcCtx.EnsurePageCount(); err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "folio-impose-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	sheetFiles := make([]string, 0, len(sheets))
	for i, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(tmpDir, fmt.Sprintf("sheet-%04d.pdf", i+1))
		if err := b.renderSheet(srcCtx, src, sheet, path); err != nil {
			return fmt.Errorf("failed to render sheet %d: %w", i+1, err)
		}
		sheetFiles = append(sheetFiles, path)
	}

	if len(sheetFiles) == 1 {
		return os.Rename(sheetFiles[0], out)
	}
	return pdfapi.MergeCreateFile(sheetFiles, out, false, b.conf)
}

// renderSheet writes one sheet to path: the base page carries the first
// placement, remaining placements are stamped on top.
func (b *PDFCPUBackend) renderSheet(srcCtx *model.Context, src string, sheet impose.Sheet, path string) error {
	if len(sheet.Placements) == 0 {
		return fmt.Errorf("sheet has no placements")
	}

	base, err := placePage(srcCtx, sheet.Placements[0], sheet.Size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, base, 0644); err != nil {
		return err
	}

	for _, pl := range sheet.Placements[1:] {
		if err := b.stampPlacement(path, src, pl); err != nil {
			return err
		}
	}

	return nil
}

// placePage extracts one source page and repositions it on a fresh page of
// the given sheet size by rewriting the media box and wrapping the content
// stream in the placement transform.
func placePage(srcCtx *model.Context, pl impose.Placement, sheet geom.Size) ([]byte, error) {
	ctxPage, err := pdfcpu.ExtractPages(srcCtx, []int{pl.Page + 1}, false)
	if err != nil {
		return nil, err
	}
	if err := ctxPage.EnsurePageCount(); err != nil {
		return nil, err
	}

	pageDict, _, inh, err := ctxPage.PageDict(1, false)
	if err != nil {
		return nil, err
	}
	if pageDict == nil {
		return nil, fmt.Errorf("failed to extract page %d", pl.Page+1)
	}

	box := inh.CropBox
	if box == nil {
		box = inh.MediaBox
	}
	if box == nil {
		return nil, fmt.Errorf("page %d has no media box", pl.Page+1)
	}

	newBox := types.RectForWidthAndHeight(0, 0, sheet.Width, sheet.Height)
	pageDict["MediaBox"] = newBox.Array()
	pageDict["CropBox"] = newBox.Array()

	// Rotation is baked into the content transform below, so the page-level
	// attribute must not apply a second time.
	pageDict.Delete("Rotate")

	content, err := ctxPage.PageContent(pageDict, 1)
	if err != nil {
		return nil, err
	}

	m := contentMatrix(rectFromPDF(box), pl)

	var buf bytes.Buffer
	buf.WriteString("q ")
	if inh.Rotate != 0 {
		buf.Write(model.ContentBytesForPageRotation(inh.Rotate, box.Width(), box.Height()))
	}
	fmt.Fprintf(&buf, "%.5f %.5f %.5f %.5f %.5f %.5f cm ", m[0], m[1], m[2], m[3], m[4], m[5])
	buf.Write(content)
	buf.WriteString(" Q ")

	streamDict, _ := ctxPage.NewStreamDictForBuf(buf.Bytes())
	if err := streamDict.Encode(); err != nil {
		return nil, err
	}
	indRef, err := ctxPage.IndRefForNewObject(*streamDict)
	if err != nil {
		return nil, err
	}
	pageDict["Contents"] = *indRef

	var out bytes.Buffer
	if err := pdfapi.WriteContext(ctxPage, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// contentMatrix builds the transform that moves a page whose effective box
// starts at box's lower-left corner onto its placement: shift the box to
// the origin, scale, then translate to the placement offset.
func contentMatrix(box geom.Rect, pl impose.Placement) geom.Matrix {
	return geom.Translate(-box.X, -box.Y).Multiply(pl.Matrix())
}

// stampPlacement overlays one source page onto the sheet file as a PDF
// stamp at the placement's absolute position.
func (b *PDFCPUBackend) stampPlacement(sheetPath, src string, pl impose.Placement) error {
	source := fmt.Sprintf("%s:%d", src, pl.Page+1)
	desc := fmt.Sprintf("scale:%.5f abs, pos:bl, rot:0, op:1", pl.Scale)

	wm, err := pdfcpu.ParsePDFWatermarkDetails(source, desc, true, types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to parse stamp details: %w", err)
	}
	wm.Dx = pl.Offset.X
	wm.Dy = pl.Offset.Y

	if err := pdfapi.AddWatermarksFile(sheetPath, "", nil, wm, b.conf); err != nil {
		return fmt.Errorf("failed to stamp page %d: %w", pl.Page+1, err)
	}
	return nil
}

// Merge implements Backend.
func (b *PDFCPUBackend) Merge(ctx context.Context, inputs []string, out string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return pdfapi.MergeCreateFile(inputs, out, false, b.conf)
}

// Split implements Backend.
func (b *PDFCPUBackend) Split(ctx context.Context, src string, span int, outDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if span < 1 {
		return fmt.Errorf("split span %d must be at least 1", span)
	}
	return pdfapi.SplitFile(src, outDir, span, b.conf)
}

// Rotate implements Backend.
func (b *PDFCPUBackend) Rotate(ctx context.Context, src string, rotation int, pages []string, out string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rotation%90 != 0 {
		return fmt.Errorf("rotation %d must be a multiple of 90", rotation)
	}
	return pdfapi.RotateFile(src, out, rotation, pages, b.conf)
}

// StampImage implements Backend.
func (b *PDFCPUBackend) StampImage(ctx context.Context, src, image string, page int, pos geom.Point, scale float64, out string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	desc := fmt.Sprintf("scale:%.2f, pos:full, rot:0, op:1", scale)
	wm, err := pdfcpu.ParseImageWatermarkDetails(image, desc, true, types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to parse image stamp details: %w", err)
	}
	wm.Dx = pos.X
	wm.Dy = pos.Y

	pages := []string{fmt.Sprintf("%d", page)}
	if err := pdfapi.AddWatermarksFile(src, out, pages, wm, b.conf); err != nil {
		return fmt.Errorf("failed to stamp image: %w", err)
	}
	return nil
}

// rectFromPDF converts a pdfcpu rectangle to a geom.Rect.
func rectFromPDF(r *types.Rectangle) geom.Rect {
	return geom.Rect{
		X:      r.LL.X,
		Y:      r.LL.Y,
		Width:  r.Width(),
		Height: r.Height(),
	}
}

package document

import (
	"testing"

	"github.com/tsawler/folio/geom"
	"github.com/tsawler/folio/impose"
)

func TestPageGeometrySize(t *testing.T) {
	pg := PageGeometry{MediaBox: geom.NewRect(0, 0, 595, 842)}

	if pg.Size() != (geom.Size{Width: 595, Height: 842}) {
		t.Errorf("Size() = %+v, want {595, 842}", pg.Size())
	}
}

func TestPageGeometryEffectiveBox(t *testing.T) {
	media := geom.NewRect(0, 0, 612, 792)
	crop := geom.NewRect(36, 36, 540, 720)

	t.Run("without crop box", func(t *testing.T) {
		pg := PageGeometry{MediaBox: media}
		if pg.EffectiveBox() != media {
			t.Errorf("EffectiveBox() = %+v, want media box", pg.EffectiveBox())
		}
	})

	t.Run("with crop box", func(t *testing.T) {
		pg := PageGeometry{MediaBox: media, CropBox: &crop}
		if pg.EffectiveBox() != crop {
			t.Errorf("EffectiveBox() = %+v, want crop box", pg.EffectiveBox())
		}
	})
}

func TestPageGeometryRotatedSize(t *testing.T) {
	tests := []struct {
		rotation int
		want     geom.Size
	}{
		{0, geom.Size{Width: 595, Height: 842}},
		{90, geom.Size{Width: 842, Height: 595}},
		{180, geom.Size{Width: 595, Height: 842}},
		{270, geom.Size{Width: 842, Height: 595}},
	}

	for _, tt := range tests {
		pg := PageGeometry{
			MediaBox: geom.NewRect(0, 0, 595, 842),
			Rotation: tt.rotation,
		}
		if got := pg.RotatedSize(); got != tt.want {
			t.Errorf("RotatedSize() with rotation %d = %+v, want %+v", tt.rotation, got, tt.want)
		}
	}
}

func TestContentMatrix(t *testing.T) {
	t.Run("origin box", func(t *testing.T) {
		pl := impose.Placement{Scale: 0.5, Offset: geom.Point{X: 100, Y: 200}}
		m := contentMatrix(geom.NewRect(0, 0, 600, 800), pl)

		// The page corner lands on the placement offset, the far corner at
		// offset plus half the page extent.
		if got := m.Transform(geom.Point{X: 0, Y: 0}); got != (geom.Point{X: 100, Y: 200}) {
			t.Errorf("origin maps to %+v, want {100, 200}", got)
		}
		if got := m.Transform(geom.Point{X: 600, Y: 800}); got != (geom.Point{X: 400, Y: 600}) {
			t.Errorf("far corner maps to %+v, want {400, 600}", got)
		}
	})

	t.Run("offset box", func(t *testing.T) {
		// Pages whose boxes do not start at the origin are shifted there
		// before scaling, so the visible region still lands in the cell.
		pl := impose.Placement{Scale: 1, Offset: geom.Point{X: 10, Y: 10}}
		m := contentMatrix(geom.NewRect(50, 70, 600, 800), pl)

		if got := m.Transform(geom.Point{X: 50, Y: 70}); got != (geom.Point{X: 10, Y: 10}) {
			t.Errorf("box corner maps to %+v, want {10, 10}", got)
		}
	})
}

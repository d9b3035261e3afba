package raycast3d

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a rendered frame. Luma is Rec. 601 over every pixel.
type Stats struct {
	Pixels     int
	Written    int  // pixels hit by a primitive; only known for a Frame
	Coverage   Real // Written / Pixels
	MeanLuma   Real
	StdDevLuma Real
}

// ImageStats computes the luma statistics of img. Hit coverage is not visible in the
// pixels (missed pixels are opaque background), so Written and Coverage stay zero.
func ImageStats(img *image.RGBA) Stats {
	b := img.Bounds()
	st := Stats{Pixels: b.Dx() * b.Dy()}
	if st.Pixels == 0 {
		return st
	}
	luma := make([]float64, 0, st.Pixels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			p := row[x*4 : x*4+4]
			luma = append(luma, 0.299*Real(p[0])+0.587*Real(p[1])+0.114*Real(p[2]))
		}
	}
	st.MeanLuma = stat.Mean(luma, nil)
	if len(luma) > 1 {
		st.StdDevLuma = stat.StdDev(luma, nil)
	}
	return st
}

// Stats adds hit coverage to the image statistics.
func (f *Frame) Stats() Stats {
	st := ImageStats(f.Image)
	st.Written = f.Hits
	if st.Pixels > 0 {
		st.Coverage = Real(f.Hits) / Real(st.Pixels)
	}
	return st
}

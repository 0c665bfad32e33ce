package imaging

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

const defaultWorkingSize = 512

// VisualDetector runs three independent statistical tests over the normalized
// image's luminance grid: histogram uniformity, horizontal edge variance, and
// quadrant noise variance. A decode failure here degrades the component to
// zero findings; the caller logs it and the pipeline continues.
type VisualDetector struct {
	Tuning documents.Tuning
	Size   int // working resolution, resized as fill (aspect not preserved)
}

func NewVisualDetector(t documents.Tuning) *VisualDetector {
	return &VisualDetector{Tuning: t, Size: defaultWorkingSize}
}

func (d *VisualDetector) Detect(data []byte) ([]documents.Finding, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", documents.ErrDecode, err)
	}

	size := d.Size
	if size <= 0 {
		size = defaultWorkingSize
	}

	lum := luminanceGrid(src, size)
	t := d.Tuning
	var findings []documents.Finding

	if ratio := dominantRatio(lum); ratio > t.UniformityRatio {
		findings = append(findings, documents.Finding{
			Type:              documents.FindingUniformColorRegion,
			Severity:          documents.SeverityMedium,
			Detail:            fmt.Sprintf("%.0f%% of pixels share one luminance value; large flat regions suggest digitally created content", ratio*100),
			ScoreContribution: t.Weights.UniformColorRegion,
		})
	}

	if variance := edgeVariance(lum, size); variance > t.EdgeVariance {
		findings = append(findings, documents.Finding{
			Type:              documents.FindingEdgeInconsistency,
			Severity:          documents.SeverityLow,
			Detail:            fmt.Sprintf("edge sharpness variance %.0f; mixed sharp and blurry regions suggest composited content", variance),
			ScoreContribution: t.Weights.EdgeInconsistency,
		})
	}

	if variance := quadrantNoiseVariance(lum, size); variance > t.NoiseVariance {
		findings = append(findings, documents.Finding{
			Type:              documents.FindingNoiseInconsistency,
			Severity:          documents.SeverityHigh,
			Detail:            fmt.Sprintf("noise floor variance %.1f across quadrants; differing noise levels are a strong splice signal", variance),
			ScoreContribution: t.Weights.NoiseInconsistency,
		})
	}

	return findings, nil
}

// luminanceGrid resizes the source to a size x size fill and converts to
// integer luminance, L = 0.299R + 0.587G + 0.114B.
func luminanceGrid(src image.Image, size int) []uint8 {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), src, src.Bounds(), draw.Src, nil)

	lum := make([]uint8, size*size)
	for i := range lum {
		r := float64(rgba.Pix[i*4])
		g := float64(rgba.Pix[i*4+1])
		b := float64(rgba.Pix[i*4+2])
		lum[i] = uint8(0.299*r + 0.587*g + 0.114*b + 0.5)
	}
	return lum
}

// dominantRatio is the share of pixels in the single most populated bin of a
// 256-bin luminance histogram.
func dominantRatio(lum []uint8) float64 {
	var hist [256]int
	for _, v := range lum {
		hist[v]++
	}
	max := 0
	for _, c := range hist {
		if c > max {
			max = c
		}
	}
	return float64(max) / float64(len(lum))
}

// edgeVariance computes the population variance of a one-dimensional gradient
// proxy, |L(x,y)-L(x-1,y)| + |L(x,y)-L(x+1,y)|, over all interior pixels.
func edgeVariance(lum []uint8, size int) float64 {
	var sum, sumSq float64
	n := 0
	for y := 0; y < size; y++ {
		row := y * size
		for x := 1; x < size-1; x++ {
			g := absDiff(lum[row+x], lum[row+x-1]) + absDiff(lum[row+x], lum[row+x+1])
			v := float64(g)
			sum += v
			sumSq += v * v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

// quadrantNoiseVariance splits the frame 2x2, computes each quadrant's mean
// horizontal adjacent-pixel difference, and returns the variance of the four
// means. Spatially inconsistent digital noise drives this up.
func quadrantNoiseVariance(lum []uint8, size int) float64 {
	half := size / 2
	means := make([]float64, 0, 4)
	for qy := 0; qy < 2; qy++ {
		for qx := 0; qx < 2; qx++ {
			var sum float64
			n := 0
			for y := qy * half; y < (qy+1)*half; y++ {
				row := y * size
				for x := qx*half + 1; x < (qx+1)*half; x++ {
					sum += float64(absDiff(lum[row+x], lum[row+x-1]))
					n++
				}
			}
			if n > 0 {
				means = append(means, sum/float64(n))
			}
		}
	}
	if len(means) == 0 {
		return 0
	}
	var sum float64
	for _, m := range means {
		sum += m
	}
	mean := sum / float64(len(means))
	var variance float64
	for _, m := range means {
		variance += (m - mean) * (m - mean)
	}
	return variance / float64(len(means))
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

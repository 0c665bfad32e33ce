package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

// MetadataAnalyzer inspects the intrinsic properties of the ORIGINAL upload
// (not the normalized form): dimensions, color space, byte density, alpha
// presence, and JFIF pixel density. Every check runs unconditionally and
// independently; one image can trigger several findings.
type MetadataAnalyzer struct {
	Tuning documents.Tuning
}

func NewMetadataAnalyzer(t documents.Tuning) *MetadataAnalyzer {
	return &MetadataAnalyzer{Tuning: t}
}

func (a *MetadataAnalyzer) Inspect(data []byte) ([]documents.Finding, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", documents.ErrDecode, err)
	}

	space, hasAlpha := classifyColorModel(cfg.ColorModel)
	t := a.Tuning
	var findings []documents.Finding

	if cfg.Width < t.MinDimensionPx || cfg.Height < t.MinDimensionPx {
		findings = append(findings, documents.Finding{
			Type:              documents.FindingLowResolution,
			Severity:          documents.SeverityMedium,
			Detail:            fmt.Sprintf("image is %dx%d px; legitimate scans are rarely below %d px on either side", cfg.Width, cfg.Height, t.MinDimensionPx),
			ScoreContribution: t.Weights.LowResolution,
		})
	}

	if space != "" && space != "srgb" && space != "rgb" && space != "cmyk" {
		findings = append(findings, documents.Finding{
			Type:              documents.FindingUnusualColorSpace,
			Severity:          documents.SeverityLow,
			Detail:            fmt.Sprintf("color space %q is unusual for a scanned document", space),
			ScoreContribution: t.Weights.UnusualColorSpace,
		})
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		bytesPerPixel := float64(len(data)) / float64(cfg.Width*cfg.Height)
		if bytesPerPixel < t.MinBytesPerPx {
			findings = append(findings, documents.Finding{
				Type:              documents.FindingHighCompression,
				Severity:          documents.SeverityMedium,
				Detail:            fmt.Sprintf("%.3f bytes per pixel suggests aggressive re-compression", bytesPerPixel),
				ScoreContribution: t.Weights.HighCompression,
			})
		}
	}

	if hasAlpha {
		findings = append(findings, documents.Finding{
			Type:              documents.FindingAlphaChannel,
			Severity:          documents.SeverityLow,
			Detail:            "alpha channel present; scanned documents are normally fully opaque",
			ScoreContribution: t.Weights.AlphaChannel,
		})
	}

	if format == "jpeg" {
		if dpi, ok := jfifDensity(data); ok && dpi < t.MinDensityDPI {
			findings = append(findings, documents.Finding{
				Type:              documents.FindingLowDPI,
				Severity:          documents.SeverityMedium,
				Detail:            fmt.Sprintf("declared density %.0f DPI is below %.0f", dpi, t.MinDensityDPI),
				ScoreContribution: t.Weights.LowDPI,
			})
		}
	}

	return findings, nil
}

// classifyColorModel maps a decoded color model to a coarse color-space name
// and whether the pixel format carries an alpha channel. Opaque truecolor
// decodes (RGBA/RGBA64) do not count as alpha-bearing.
func classifyColorModel(m color.Model) (string, bool) {
	switch m {
	case color.YCbCrModel:
		return "srgb", false
	case color.NYCbCrAModel:
		return "srgb", true
	case color.CMYKModel:
		return "cmyk", false
	case color.RGBAModel, color.RGBA64Model:
		return "rgb", false
	case color.NRGBAModel, color.NRGBA64Model:
		return "rgb", true
	case color.GrayModel, color.Gray16Model:
		return "gray", false
	}
	if _, ok := m.(color.Palette); ok {
		return "rgb", false
	}
	return "", false
}

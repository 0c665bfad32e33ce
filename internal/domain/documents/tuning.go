package documents

// Tuning carries the detection thresholds and score weights. The values are
// empirically chosen and exposed as configuration so they can be recalibrated
// against a labeled corpus without a rebuild.
type Tuning struct {
	// Metadata thresholds
	MinDimensionPx  int     // below this on either axis: LOW_RESOLUTION
	MinBytesPerPx   float64 // below this: HIGH_COMPRESSION
	MinDensityDPI   float64 // below this, when density is known: LOW_DPI
	// Visual thresholds
	UniformityRatio float64 // dominant luminance bin share above this: UNIFORM_COLOR_REGION
	EdgeVariance    float64 // gradient population variance above this: EDGE_INCONSISTENCY
	NoiseVariance   float64 // quadrant-mean variance above this: NOISE_INCONSISTENCY
	// Score weights per finding type
	Weights Weights
}

// Weights holds the per-finding score contributions.
type Weights struct {
	LowResolution        int
	UnusualColorSpace    int
	HighCompression      int
	AlphaChannel         int
	LowDPI               int
	UniformColorRegion   int
	EdgeInconsistency    int
	NoiseInconsistency   int
	DocumentTypeMismatch int
}

// DefaultTuning returns the reference calibration.
func DefaultTuning() Tuning {
	return Tuning{
		MinDimensionPx:  200,
		MinBytesPerPx:   0.1,
		MinDensityDPI:   72,
		UniformityRatio: 0.25,
		EdgeVariance:    2000,
		NoiseVariance:   50,
		Weights: Weights{
			LowResolution:        15,
			UnusualColorSpace:    5,
			HighCompression:      10,
			AlphaChannel:         8,
			LowDPI:               12,
			UniformColorRegion:   15,
			EdgeInconsistency:    8,
			NoiseInconsistency:   20,
			DocumentTypeMismatch: 25,
		},
	}
}

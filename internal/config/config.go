package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Shoaibzaak/docscreen/internal/domain/documents"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	AI struct {
		APIKey             string `yaml:"apiKey"`
		Model              string `yaml:"model"`
		CallTimeoutSeconds int    `yaml:"callTimeoutSeconds"`
	} `yaml:"ai"`

	Limits struct {
		MaxUploadBytes   int64 `yaml:"maxUploadBytes"`
		RateCapacity     int   `yaml:"rateCapacity"`
		RateRefillPerSec int   `yaml:"rateRefillPerSec"`
	} `yaml:"limits"`

	Analysis struct {
		UniformityRatio float64        `yaml:"uniformityRatio"`
		EdgeVariance    float64        `yaml:"edgeVariance"`
		NoiseVariance   float64        `yaml:"noiseVariance"`
		Weights         map[string]int `yaml:"weights"`
		// Declared types and their compatible classifier labels; empty means
		// the built-in table.
		DocumentTypes map[string][]string `yaml:"documentTypes"`
	} `yaml:"analysis"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`

	Auth struct {
		// client name -> API key; empty disables auth
		APIKeys map[string]string `yaml:"apiKeys"`
	} `yaml:"auth"`
}

// Load reads the yaml config file and applies defaults. OPENAI_API_KEY in the
// environment overrides the file so credentials can stay out of it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.AI.CallTimeoutSeconds == 0 {
		c.AI.CallTimeoutSeconds = 30
	}
	if c.Limits.MaxUploadBytes == 0 {
		c.Limits.MaxUploadBytes = documents.MaxUploadBytes
	}
	if c.Limits.RateCapacity == 0 {
		c.Limits.RateCapacity = 30
	}
	if c.Limits.RateRefillPerSec == 0 {
		c.Limits.RateRefillPerSec = 5
	}
}

// CallTimeout helper for the per-capability AI bound
func (c *Config) CallTimeout() time.Duration {
	return time.Duration(c.AI.CallTimeoutSeconds) * time.Second
}

// Tuning builds the detection calibration: defaults overlaid with any
// threshold or weight overrides from the file.
func (c *Config) Tuning() documents.Tuning {
	t := documents.DefaultTuning()
	if v := c.Analysis.UniformityRatio; v > 0 {
		t.UniformityRatio = v
	}
	if v := c.Analysis.EdgeVariance; v > 0 {
		t.EdgeVariance = v
	}
	if v := c.Analysis.NoiseVariance; v > 0 {
		t.NoiseVariance = v
	}
	for name, w := range c.Analysis.Weights {
		switch documents.FindingType(name) {
		case documents.FindingLowResolution:
			t.Weights.LowResolution = w
		case documents.FindingUnusualColorSpace:
			t.Weights.UnusualColorSpace = w
		case documents.FindingHighCompression:
			t.Weights.HighCompression = w
		case documents.FindingAlphaChannel:
			t.Weights.AlphaChannel = w
		case documents.FindingLowDPI:
			t.Weights.LowDPI = w
		case documents.FindingUniformColorRegion:
			t.Weights.UniformColorRegion = w
		case documents.FindingEdgeInconsistency:
			t.Weights.EdgeInconsistency = w
		case documents.FindingNoiseInconsistency:
			t.Weights.NoiseInconsistency = w
		case documents.FindingDocumentTypeMismatch:
			t.Weights.DocumentTypeMismatch = w
		}
	}
	return t
}

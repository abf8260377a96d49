package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/filterbank"
	"github.com/RyanBlaney/sonido-stockwell/algorithms/spectral"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// File is the on-disk transform configuration
type File struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`
	Engine    string `mapstructure:"engine" yaml:"engine"`

	ST  STConfig  `mapstructure:"st" yaml:"st"`
	FST FSTConfig `mapstructure:"fst" yaml:"fst"`
	PWT PWTConfig `mapstructure:"pwt" yaml:"pwt"`
}

// STConfig holds S-Transform parameters. MaxIndex 0 selects fft_length/2 - 1.
type STConfig struct {
	Radix2Exp  int     `mapstructure:"radix2_exp" yaml:"radix2_exp"`
	SampleRate int     `mapstructure:"samplate" yaml:"samplate"`
	MinIndex   int     `mapstructure:"min_index" yaml:"min_index"`
	MaxIndex   int     `mapstructure:"max_index" yaml:"max_index"`
	Factor     float64 `mapstructure:"factor" yaml:"factor"`
	Norm       float64 `mapstructure:"norm" yaml:"norm"`
}

// FSTConfig holds fast S-Transform parameters
type FSTConfig struct {
	Radix2Exp  int `mapstructure:"radix2_exp" yaml:"radix2_exp"`
	SampleRate int `mapstructure:"samplate" yaml:"samplate"`
	MinIndex   int `mapstructure:"min_index" yaml:"min_index"`
	MaxIndex   int `mapstructure:"max_index" yaml:"max_index"`
}

// PWTConfig holds pseudo wavelet transform parameters; enums are stored by name
type PWTConfig struct {
	Num          int     `mapstructure:"num" yaml:"num"`
	Radix2Exp    int     `mapstructure:"radix2_exp" yaml:"radix2_exp"`
	SampleRate   int     `mapstructure:"samplate" yaml:"samplate"`
	LowFre       float64 `mapstructure:"low_fre" yaml:"low_fre"`
	HighFre      float64 `mapstructure:"high_fre" yaml:"high_fre"`
	BinPerOctave int     `mapstructure:"bin_per_octave" yaml:"bin_per_octave"`
	Scale        string  `mapstructure:"scale_type" yaml:"scale_type"`
	Style        string  `mapstructure:"style_type" yaml:"style_type"`
	Normal       string  `mapstructure:"normal_type" yaml:"normal_type"`
	IsPadding    bool    `mapstructure:"is_padding" yaml:"is_padding"`
	EnableDet    bool    `mapstructure:"enable_det" yaml:"enable_det"`
}

// Load reads a YAML file and fills unset keys with defaults.
// An empty path yields the defaults.
func Load(path string) (*File, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	setDefaults(v)

	f := &File{}
	if err := v.Unmarshal(f); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the names and counts that the transform constructors
// cannot check themselves. Numeric ranges are left to the constructors.
func (f *File) Validate() error {
	switch strings.ToLower(f.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format must be text or json, got %q", f.LogFormat)
	}
	if f.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	if _, err := spectral.ParseEngineKind(f.Engine); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if _, err := filterbank.ParseScaleType(f.PWT.Scale); err != nil {
		return fmt.Errorf("pwt: %w", err)
	}
	if _, err := filterbank.ParseStyleType(f.PWT.Style); err != nil {
		return fmt.Errorf("pwt: %w", err)
	}
	if _, err := filterbank.ParseNormalType(f.PWT.Normal); err != nil {
		return fmt.Errorf("pwt: %w", err)
	}
	return nil
}

// WriteYAML serialises f
func (f *File) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

package config

import (
	"fmt"
	"strings"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/filterbank"
	"github.com/RyanBlaney/sonido-stockwell/algorithms/spectral"
	"github.com/RyanBlaney/sonido-stockwell/algorithms/stockwell"
	"github.com/RyanBlaney/sonido-stockwell/logging"
)

// Logger builds the logger described by log_level and log_format
func (f *File) Logger() (logging.Logger, error) {
	level := logging.ParseLevel(f.LogLevel)
	if strings.EqualFold(f.LogFormat, "json") {
		l, err := logging.NewProductionZapLogger(level)
		if err != nil {
			return nil, fmt.Errorf("failed to build zap logger: %w", err)
		}
		return l, nil
	}
	l := logging.NewDefaultLogger()
	l.SetLevel(level)
	return l, nil
}

// Options returns the transform options shared by every instance built from f
func (f *File) Options(logger logging.Logger) ([]stockwell.Option, error) {
	engine, err := spectral.ParseEngineKind(f.Engine)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return []stockwell.Option{
		stockwell.WithLogger(logger),
		stockwell.WithWorkers(f.Workers),
		stockwell.WithEngine(engine),
	}, nil
}

// NewST builds the configured S-Transform
func (f *File) NewST(logger logging.Logger) (*stockwell.ST, error) {
	opts, err := f.Options(logger)
	if err != nil {
		return nil, err
	}
	c := f.ST
	return stockwell.NewST(c.Radix2Exp, c.SampleRate, c.MinIndex, c.MaxIndex, c.Factor, c.Norm, opts...)
}

// NewFST builds the configured fast S-Transform
func (f *File) NewFST(logger logging.Logger) (*stockwell.FST, error) {
	opts, err := f.Options(logger)
	if err != nil {
		return nil, err
	}
	c := f.FST
	return stockwell.NewFST(c.Radix2Exp, c.SampleRate, c.MinIndex, c.MaxIndex, opts...)
}

// NewPWT builds the configured pseudo wavelet transform, with the det bank
// when enable_det is set
func (f *File) NewPWT(logger logging.Logger) (*stockwell.PWT, error) {
	opts, err := f.Options(logger)
	if err != nil {
		return nil, err
	}
	cfg, err := f.PWT.transformConfig()
	if err != nil {
		return nil, err
	}

	p, err := stockwell.NewPWT(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if f.PWT.EnableDet {
		p.EnableDet(true)
	}
	return p, nil
}

func (c PWTConfig) transformConfig() (stockwell.PWTConfig, error) {
	scale, err := filterbank.ParseScaleType(c.Scale)
	if err != nil {
		return stockwell.PWTConfig{}, fmt.Errorf("pwt: %w", err)
	}
	style, err := filterbank.ParseStyleType(c.Style)
	if err != nil {
		return stockwell.PWTConfig{}, fmt.Errorf("pwt: %w", err)
	}
	normal, err := filterbank.ParseNormalType(c.Normal)
	if err != nil {
		return stockwell.PWTConfig{}, fmt.Errorf("pwt: %w", err)
	}

	return stockwell.PWTConfig{
		Num:          c.Num,
		Radix2Exp:    c.Radix2Exp,
		SampleRate:   c.SampleRate,
		LowFre:       c.LowFre,
		HighFre:      c.HighFre,
		BinPerOctave: c.BinPerOctave,
		Scale:        scale,
		Style:        style,
		Normal:       normal,
		IsPadding:    c.IsPadding,
	}, nil
}

package stockwell

import (
	"errors"
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/filterbank"
	"github.com/RyanBlaney/sonido-stockwell/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
)

type PWTTestSuite struct {
	suite.Suite
	pwt *PWT
}

func (s *PWTTestSuite) SetupTest() {
	p, err := NewPWT(DefaultPWTConfig(84))
	s.Require().NoError(err)
	s.pwt = p
}

func TestPWTSuite(t *testing.T) {
	suite.Run(t, new(PWTTestSuite))
}

func (s *PWTTestSuite) TestOctaveLayout() {
	s.Equal(84, s.pwt.Num())
	s.Equal(4096, s.pwt.FFTLength())

	fre := s.pwt.FreBandArr()
	s.Require().Len(fre, 84)
	s.InDelta(32.703, fre[0], 1e-9)
	s.InDelta(440, fre[45], 0.01)
	for i := 1; i < len(fre); i++ {
		s.Greater(fre[i], fre[i-1])
	}

	bins := s.pwt.BinBandArr()
	s.Require().Len(bins, 84)
	for i := 1; i < len(bins); i++ {
		s.GreaterOrEqual(bins[i], bins[i-1])
	}
	s.Equal(56, bins[45])

	cfg := s.pwt.Config()
	s.InDelta(32.703, cfg.LowFre, 1e-12)
	s.Equal(filterbank.ScaleOctave, s.pwt.Band().Scale)
}

func (s *PWTTestSuite) TestCoords() {
	y := s.pwt.YCoords()
	s.Require().Len(y, 85)
	s.InDelta(32.703, y[0], 1e-12)
	s.Equal(s.pwt.FreBandArr(), y[1:])

	x := s.pwt.XCoords()
	s.Require().Len(x, 4097)
	s.Equal(4096.0/32000, x[4096])
}

func (s *PWTTestSuite) TestToneHitsItsBand() {
	res, err := s.pwt.Transform(tone(4096, 32000, 440, 1))
	s.Require().NoError(err)
	s.Equal(84, res.Rows())
	s.Equal(4096, res.Cols())
	s.InDelta(45, float64(res.PeakRow()), 1)

	again, err := s.pwt.Transform(tone(4096, 32000, 440, 1))
	s.Require().NoError(err)
	s.True(mat.Equal(res.Real, again.Real))
	s.True(mat.Equal(res.Imag, again.Imag))
}

func (s *PWTTestSuite) TestDetDisabled() {
	s.False(s.pwt.DetEnabled())

	signal := tone(4096, 32000, 500, 1)
	_, err := s.pwt.TransformDet(signal)
	s.True(errors.Is(err, ErrDetDisabled))
	_, _, err = s.pwt.TransformBoth(signal)
	s.True(errors.Is(err, ErrDetDisabled))

	s.pwt.EnableDet(true)
	s.True(s.pwt.DetEnabled())
	_, err = s.pwt.TransformDet(signal)
	s.NoError(err)

	s.pwt.EnableDet(false)
	_, err = s.pwt.TransformDet(signal)
	s.True(errors.Is(err, ErrDetDisabled))
}

// 500 Hz is exactly bin 64, so the strongest row is a pure phasor and the
// det ratio recovers the tone frequency.
func (s *PWTTestSuite) TestInstantaneousFrequency() {
	s.pwt.EnableDet(true)

	signal := make([]float64, 4096)
	for i := range signal {
		signal[i] = math.Cos(2 * math.Pi * 64 * float64(i) / 4096)
	}

	res, det, err := s.pwt.TransformBoth(signal)
	s.Require().NoError(err)

	detOnly, err := s.pwt.TransformDet(signal)
	s.Require().NoError(err)
	s.True(mat.Equal(det.Real, detOnly.Real))
	s.True(mat.Equal(det.Imag, detOnly.Imag))

	peak := res.PeakRow()
	freq := InstantaneousFrequency(res.Row(peak), det.Row(peak), 32000)
	s.Require().Len(freq, 4096)
	for j := 0; j < len(freq); j += 211 {
		s.InDelta(500, freq[j], 1e-6)
	}
}

func (s *PWTTestSuite) TestSignalLength() {
	_, err := s.pwt.Transform(make([]float64, 4095))
	s.True(errors.Is(err, ErrInput))

	s.pwt.EnableDet(true)
	_, _, err = s.pwt.TransformBoth(make([]float64, 8192))
	s.True(errors.Is(err, ErrInput))
}

func (s *PWTTestSuite) TestEveryScaleAndStyle() {
	signal := chirp(1024)
	for scale := filterbank.ScaleLinear; scale <= filterbank.ScaleLog; scale++ {
		for style := filterbank.StyleSlaney; style <= filterbank.StyleGauss; style++ {
			cfg := DefaultPWTConfig(24)
			cfg.Radix2Exp = 10
			cfg.SampleRate = 16000
			cfg.HighFre = 8000
			cfg.Scale = scale
			cfg.Style = style
			cfg.Normal = filterbank.NormalArea

			p, err := NewPWT(cfg)
			s.Require().NoError(err, "%s/%s", scale, style)
			res, err := p.Transform(signal)
			s.Require().NoError(err)
			s.Equal(24, res.Rows())
		}
	}
}

func TestPWTLowFreBoundary(t *testing.T) {
	for _, scale := range []filterbank.ScaleType{filterbank.ScaleOctave, filterbank.ScaleLog} {
		cfg := DefaultPWTConfig(12)
		cfg.Scale = scale
		cfg.LowFre = 32.703
		_, err := NewPWT(cfg)
		require.NoError(t, err, scale.String())

		cfg.LowFre = 32.702
		_, err = NewPWT(cfg)
		assert.True(t, errors.Is(err, ErrConfig), scale.String())

		var ce *ConfigError
		require.True(t, errors.As(err, &ce), scale.String())
		assert.Equal(t, "low_fre", ce.Param)

		var pe *filterbank.ParamError
		assert.True(t, errors.As(err, &pe), "cause kept for %s", scale)
	}
}

func TestPWTEmptyFiltersWarn(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	logger := logging.NewZapLogger(zap.New(obs))

	cfg := DefaultPWTConfig(84)
	cfg.IsPadding = false
	p, err := NewPWT(cfg, WithLogger(logger))
	require.NoError(t, err)

	warnings := logs.FilterMessage("band filter covers no fft bin, row will be zero").All()
	require.NotEmpty(t, warnings)
	assert.Equal(t, "pwt", warnings[0].ContextMap()["transform"])

	res, err := p.Transform(chirp(4096))
	require.NoError(t, err)

	row, ok := warnings[0].ContextMap()["row"].(int64)
	require.True(t, ok)
	values := res.Row(int(row))
	assert.Zero(t, values[0])
	assert.Zero(t, values[100])
}

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/RyanBlaney/sonido-stockwell/algorithms/filterbank"
	"github.com/RyanBlaney/sonido-stockwell/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stockwell.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	assert.Equal(t, "info", f.LogLevel)
	assert.Equal(t, 1, f.Workers)
	assert.Equal(t, "gonum", f.Engine)
	assert.Equal(t, 12, f.ST.Radix2Exp)
	assert.Equal(t, 1.0, f.ST.Factor)
	assert.Equal(t, 84, f.PWT.Num)
	assert.Equal(t, "octave", f.PWT.Scale)
	assert.True(t, f.PWT.IsPadding)
	require.NoError(t, f.Validate())

	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := writeFile(t, `
log_level: debug
workers: 4
engine: godsp
st:
  radix2_exp: 10
  max_index: 200
  factor: 2.5
pwt:
  num: 40
  scale_type: mel
  style_type: hann
  normal_type: area
  high_fre: 8000
  is_padding: false
`)

	f, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", f.LogLevel)
	assert.Equal(t, 4, f.Workers)
	assert.Equal(t, "godsp", f.Engine)
	assert.Equal(t, 10, f.ST.Radix2Exp)
	assert.Equal(t, 200, f.ST.MaxIndex)
	assert.Equal(t, 2.5, f.ST.Factor)
	assert.Equal(t, 1.0, f.ST.Norm)
	assert.Equal(t, 32000, f.ST.SampleRate)
	assert.Equal(t, 40, f.PWT.Num)
	assert.Equal(t, "mel", f.PWT.Scale)
	assert.Equal(t, 8000.0, f.PWT.HighFre)
	assert.False(t, f.PWT.IsPadding)
	assert.Equal(t, 12, f.PWT.BinPerOctave)
}

func TestLoadRejectsBadNames(t *testing.T) {
	cases := map[string]string{
		"engine":  "engine: fftw\n",
		"scale":   "pwt:\n  scale_type: cqt\n",
		"style":   "pwt:\n  style_type: sinc\n",
		"normal":  "pwt:\n  normal_type: peak\n",
		"workers": "workers: -2\n",
		"format":  "log_format: xml\n",
	}
	for name, body := range cases {
		_, err := Load(writeFile(t, body))
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	f.Workers = 3
	f.PWT.Scale = "erb"
	f.PWT.EnableDet = true
	f.ST.Factor = 0.75

	var buf bytes.Buffer
	require.NoError(t, f.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "scale_type: erb")

	loaded, err := Load(writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestBuildTransforms(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	f.ST.Radix2Exp = 9
	f.FST.Radix2Exp = 9
	f.PWT.EnableDet = true
	logger := &logging.NoOpLogger{}

	st, err := f.NewST(logger)
	require.NoError(t, err)
	assert.Equal(t, 255, st.Num())

	fst, err := f.NewFST(logger)
	require.NoError(t, err)
	assert.Equal(t, 255, fst.Num())

	pwt, err := f.NewPWT(logger)
	require.NoError(t, err)
	assert.Equal(t, 84, pwt.Num())
	assert.True(t, pwt.DetEnabled())
	assert.Equal(t, filterbank.StyleSlaney, pwt.Config().Style)

	f.PWT.LowFre = 20
	_, err = f.NewPWT(logger)
	assert.Error(t, err)

	f.Engine = "fftw"
	_, err = f.NewST(logger)
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	f, err := Default()
	require.NoError(t, err)
	l, err := f.Logger()
	require.NoError(t, err)
	assert.IsType(t, &logging.DefaultLogger{}, l)

	f.LogFormat = "json"
	l, err = f.Logger()
	require.NoError(t, err)
	assert.IsType(t, &logging.ZapLogger{}, l)
}

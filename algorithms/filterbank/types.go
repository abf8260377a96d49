package filterbank

import (
	"fmt"
	"strings"
)

// ScaleType selects how band centre frequencies are spaced
type ScaleType int

const (
	ScaleLinear ScaleType = iota
	ScaleLinspace
	ScaleMel
	ScaleBark
	ScaleErb
	ScaleOctave
	ScaleLog
)

// StyleType selects the shape of each band filter
type StyleType int

const (
	StyleSlaney StyleType = iota
	StyleETSI
	StyleGammatone
	StylePoint
	StyleRect
	StyleHann
	StyleHamm
	StyleBlackman
	StyleBohman
	StyleKaiser
	StyleGauss
)

// NormalType selects the per-filter amplitude normalization
type NormalType int

const (
	NormalNone NormalType = iota
	NormalArea
	NormalBandWidth
)

var scaleNames = []string{"linear", "linspace", "mel", "bark", "erb", "octave", "log"}

var styleNames = []string{"slaney", "etsi", "gammatone", "point", "rect", "hann", "hamm", "blackman", "bohman", "kaiser", "gauss"}

var normalNames = []string{"none", "area", "bandwidth"}

func enumString(names []string, v int, kind string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", kind, v)
}

func parseEnum(names []string, s, kind string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", "")
	for i, name := range names {
		if name == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, s)
}

func (s ScaleType) String() string  { return enumString(scaleNames, int(s), "scale") }
func (s StyleType) String() string  { return enumString(styleNames, int(s), "style") }
func (n NormalType) String() string { return enumString(normalNames, int(n), "normal") }

// Valid reports whether s is one of the defined scales
func (s ScaleType) Valid() bool { return s >= ScaleLinear && s <= ScaleLog }

// Valid reports whether s is one of the defined styles
func (s StyleType) Valid() bool { return s >= StyleSlaney && s <= StyleGauss }

// Valid reports whether n is one of the defined normalizations
func (n NormalType) Valid() bool { return n >= NormalNone && n <= NormalBandWidth }

// ParseScaleType parses a scale name such as "mel" or "octave"
func ParseScaleType(s string) (ScaleType, error) {
	v, err := parseEnum(scaleNames, s, "scale type")
	return ScaleType(v), err
}

// ParseStyleType parses a style name such as "slaney" or "hann"
func ParseStyleType(s string) (StyleType, error) {
	v, err := parseEnum(styleNames, s, "style type")
	return StyleType(v), err
}

// ParseNormalType parses "none", "area" or "bandwidth" ("band_width" also accepted)
func ParseNormalType(s string) (NormalType, error) {
	v, err := parseEnum(normalNames, s, "normal type")
	return NormalType(v), err
}

// ParamError reports an invalid band or filter parameter
type ParamError struct {
	Param  string
	Value  any
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s=%v: %s", e.Param, e.Value, e.Reason)
}

func paramErr(param string, value any, format string, args ...any) error {
	return &ParamError{Param: param, Value: value, Reason: fmt.Sprintf(format, args...)}
}

package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Default returns the configuration Load produces for an empty file
func Default() (*File, error) {
	v := viper.New()
	setDefaults(v)

	f := &File{}
	if err := v.Unmarshal(f); err != nil {
		return nil, fmt.Errorf("unable to decode default configuration: %w", err)
	}
	return f, nil
}

// setDefaults sets default values for every key the file leaves out
func setDefaults(v *viper.Viper) {
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
	if !v.IsSet("log_format") {
		v.Set("log_format", "text")
	}
	if !v.IsSet("workers") {
		v.Set("workers", 1)
	}
	if !v.IsSet("engine") {
		v.Set("engine", "gonum")
	}

	// S-Transform
	if !v.IsSet("st.radix2_exp") {
		v.Set("st.radix2_exp", 12)
	}
	if !v.IsSet("st.samplate") {
		v.Set("st.samplate", 32000)
	}
	if !v.IsSet("st.min_index") {
		v.Set("st.min_index", 1)
	}
	if !v.IsSet("st.max_index") {
		v.Set("st.max_index", 0)
	}
	if !v.IsSet("st.factor") {
		v.Set("st.factor", 1.0)
	}
	if !v.IsSet("st.norm") {
		v.Set("st.norm", 1.0)
	}

	// fast S-Transform
	if !v.IsSet("fst.radix2_exp") {
		v.Set("fst.radix2_exp", 12)
	}
	if !v.IsSet("fst.samplate") {
		v.Set("fst.samplate", 32000)
	}
	if !v.IsSet("fst.min_index") {
		v.Set("fst.min_index", 1)
	}
	if !v.IsSet("fst.max_index") {
		v.Set("fst.max_index", 0)
	}

	// pseudo wavelet transform
	if !v.IsSet("pwt.num") {
		v.Set("pwt.num", 84)
	}
	if !v.IsSet("pwt.radix2_exp") {
		v.Set("pwt.radix2_exp", 12)
	}
	if !v.IsSet("pwt.samplate") {
		v.Set("pwt.samplate", 32000)
	}
	if !v.IsSet("pwt.low_fre") {
		v.Set("pwt.low_fre", 0.0)
	}
	if !v.IsSet("pwt.high_fre") {
		v.Set("pwt.high_fre", 0.0)
	}
	if !v.IsSet("pwt.bin_per_octave") {
		v.Set("pwt.bin_per_octave", 12)
	}
	if !v.IsSet("pwt.scale_type") {
		v.Set("pwt.scale_type", "octave")
	}
	if !v.IsSet("pwt.style_type") {
		v.Set("pwt.style_type", "slaney")
	}
	if !v.IsSet("pwt.normal_type") {
		v.Set("pwt.normal_type", "none")
	}
	if !v.IsSet("pwt.is_padding") {
		v.Set("pwt.is_padding", true)
	}
	if !v.IsSet("pwt.enable_det") {
		v.Set("pwt.enable_det", false)
	}
}

package main

import (
	"github.com/andareed/profilecard/drawer"
	"github.com/spf13/viper"
)

// Nested keys that have no flag of their own.
const (
	keyInitial       = "drawer.initial"
	keyCollapsed     = "drawer.collapsed"
	keyPartial       = "drawer.partial"
	keyExpanded      = "drawer.expanded"
	keyLowThreshold  = "drawer.low_threshold"
	keyHighThreshold = "drawer.high_threshold"
	keyCloseGap      = "drawer.close_gap"
	keyFrequency     = "spring.frequency"
	keyDamping       = "spring.damping"
	keyLogicalHeight = "layout.logical_height"
)

func setConfigDefaults(v *viper.Viper) {
	d := drawer.DefaultConfig()
	v.SetDefault(keyInitial, d.Initial)
	v.SetDefault(keyCollapsed, d.Collapsed)
	v.SetDefault(keyPartial, d.Partial)
	v.SetDefault(keyExpanded, d.Expanded)
	v.SetDefault(keyLowThreshold, d.LowThreshold)
	v.SetDefault(keyHighThreshold, d.HighThreshold)
	v.SetDefault(keyCloseGap, d.CloseGap)
	v.SetDefault(keyFrequency, d.Frequency)
	v.SetDefault(keyDamping, d.Damping)
	v.SetDefault(keyLogicalHeight, DefaultLogicalHeight)
}

func loadAppConfig(v *viper.Viper) appConfig {
	return appConfig{
		drawer: drawer.Config{
			Initial:       v.GetFloat64(keyInitial),
			Collapsed:     v.GetFloat64(keyCollapsed),
			Partial:       v.GetFloat64(keyPartial),
			Expanded:      v.GetFloat64(keyExpanded),
			LowThreshold:  v.GetFloat64(keyLowThreshold),
			HighThreshold: v.GetFloat64(keyHighThreshold),
			CloseGap:      v.GetBool(keyCloseGap),
			FPS:           drawer.DefaultFPS,
			Frequency:     v.GetFloat64(keyFrequency),
			Damping:       v.GetFloat64(keyDamping),
		},
		logicalHeight: v.GetFloat64(keyLogicalHeight),
	}
}

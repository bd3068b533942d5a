package config

// SettingsConfig contains user-adjustable settings defaults
type SettingsConfig struct {
	VolumeSteps []float64
	// AppName is the gdata namespace the settings are saved under
	AppName string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		AppName:     "brawler",
	}
}

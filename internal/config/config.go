package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"serverAddress"`
	DatasetSource   string        `mapstructure:"datasetSource"`
	FetchTimeout    time.Duration `mapstructure:"fetchTimeout"`
	LogLevel        string        `mapstructure:"logLevel"`
	LogPretty       bool          `mapstructure:"logPretty"`
	CollationLocale string        `mapstructure:"collationLocale"`
	Map             MapConfig     `mapstructure:"map"`
}

// MapConfig holds the initial view and tile layer of the map.
type MapConfig struct {
	CenterLat   float64 `mapstructure:"centerLat" json:"centerLat"`
	CenterLng   float64 `mapstructure:"centerLng" json:"centerLng"`
	Zoom        int     `mapstructure:"zoom" json:"zoom"`
	MaxZoom     int     `mapstructure:"maxZoom" json:"maxZoom"`
	TileURL     string  `mapstructure:"tileURL" json:"tileURL"`
	Subdomains  string  `mapstructure:"subdomains" json:"subdomains"`
	Attribution string  `mapstructure:"attribution" json:"attribution"`
}

const configName = "placemap"

func setDefaults(v *viper.Viper) {
	v.SetDefault("serverAddress", ":8080")
	v.SetDefault("datasetSource", "./data.json")
	v.SetDefault("fetchTimeout", "10s")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logPretty", false)
	v.SetDefault("collationLocale", "fr")

	v.SetDefault("map.centerLat", 43.29398)
	v.SetDefault("map.centerLng", 5.3843)
	v.SetDefault("map.zoom", 16)
	v.SetDefault("map.maxZoom", 20)
	v.SetDefault("map.tileURL", "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png")
	v.SetDefault("map.subdomains", "abcd")
	v.SetDefault("map.attribution", `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors &copy; <a href="https://carto.com/attributions">CARTO</a>`)
}

// Defaults returns the configuration used when no file or environment override is present.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	// defaults are static and always decode
	_ = v.Unmarshal(&config)
	return config
}

// LoadConfig reads placemap.json from path, applies PLACEMAP_* environment
// overrides and fills in defaults. A missing config file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType("json")
	v.AddConfigPath(path)

	v.SetEnvPrefix("PLACEMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: error reading config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unable to decode config: %w", err)
	}
	return config, nil
}

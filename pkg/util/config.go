package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/citypath/pkg"
	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("ROAD_SEGMENTS_PATH", "road-segments.txt")
	viper.SetDefault("CITY_GPS_PATH", "city-gps.txt")
	viper.SetDefault("IDS_MAX_DEPTH", pkg.IDS_MAX_DEPTH)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("RATE_LIMIT_RPS", 50)
	viper.SetDefault("RATE_LIMIT_BURST", 100)
}

// ReadConfig loads defaults, environment overrides and, when present, a config file.
// An explicit configFile must exist; otherwise a missing config.yaml under ./data/ or ./ is ignored.
func ReadConfig(configFile string) error {
	SetConfigDefaults()
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("fatal error config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

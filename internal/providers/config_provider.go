package providers

import (
	"fmt"
	"ntd/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	// Loading runs once at boot; a reset keeps repeated calls from
	// accumulating search paths and binds in viper's global state.
	viper.Reset()

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "NTD_LOG_LEVEL")
	viper.BindEnv("storage.dataDir", "NTD_DATA_DIR")
	viper.BindEnv("storage.flushInterval", "NTD_FLUSH_INTERVAL")
	viper.BindEnv("caches.imageCapacity", "NTD_IMAGE_CACHE_CAPACITY")
	viper.BindEnv("responseCache.enabled", "NTD_RESPONSE_CACHE_ENABLED")
	viper.BindEnv("responseCache.size", "NTD_RESPONSE_CACHE_SIZE")
	viper.BindEnv("remote.apiKey", "NTD_REMOTE_API_KEY")

	// Cache policy defaults, overridable per deployment.
	viper.SetDefault("caches.recommendationTTL", "24h")
	viper.SetDefault("caches.searchTTL", "30m")
	viper.SetDefault("caches.imageCapacity", 50)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "NutritionTrackerDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

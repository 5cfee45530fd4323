package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	DataDir       string        `yaml:"dataDir" validate:"required|unixPath"`
	FlushInterval time.Duration `yaml:"flushInterval" validate:"required|min:1"`
	Compression   bool          `yaml:"compression"`
	FavoritesDB   string        `yaml:"favoritesDB" validate:"required|unixPath"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CachesConfig struct {
	RecommendationTTL time.Duration `yaml:"recommendationTTL" validate:"required|min:1"`
	SearchTTL         time.Duration `yaml:"searchTTL" validate:"required|min:1"`
	ImageCapacity     int           `yaml:"imageCapacity" validate:"required|min:1"`
}

type ResponseCacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
	TTL     int  `yaml:"ttl"`
}

type RemoteConfig struct {
	RecommendationURL string `yaml:"recommendationURL" validate:"required|fullUrl"`
	FoodSearchURL     string `yaml:"foodSearchURL" validate:"required|fullUrl"`
	APIKey            string `yaml:"apiKey"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName       string
	Debug         bool
	Path          string
	WebServer     Server              `yaml:"webServer"`
	Storage       StorageConfig       `yaml:"storage"`
	Logger        LoggerConfig        `yaml:"logger"`
	Caches        CachesConfig        `yaml:"caches"`
	ResponseCache ResponseCacheConfig `yaml:"responseCache"`
	Remote        RemoteConfig        `yaml:"remote"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

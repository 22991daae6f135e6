package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string
	CatalogBackend string // "memory" or "mongo"
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	RedisPassword  string
	SessionTTLMin  int
	LogFile        string
	LogMaxSizeMB   int
	LogMaxBackups  int
	LogMaxAgeDays  int
}

// Load reads an optional config.yaml and lets environment variables
// override every key. Missing values fall back to development defaults.
// JWT signing is configured separately through the JWT_SECRET and
// JWT_EXPIRY_HOURS environment variables (see utils.GenerateJWT).
func Load() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("catalog_backend", "memory")
	v.SetDefault("mongodb_uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb_database", "habitacional")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("session_ttl_minutes", 1440)
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 50)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 28)

	if err := v.ReadInConfig(); err != nil {
		fmt.Println("No config.yaml found, using defaults and env vars")
	}

	return Config{
		Port:           v.GetString("port"),
		CatalogBackend: v.GetString("catalog_backend"),
		MongoURI:       v.GetString("mongodb_uri"),
		MongoDatabase:  v.GetString("mongodb_database"),
		RedisAddr:      v.GetString("redis_addr"),
		RedisPassword:  v.GetString("redis_password"),
		SessionTTLMin:  v.GetInt("session_ttl_minutes"),
		LogFile:        v.GetString("log_file"),
		LogMaxSizeMB:   v.GetInt("log_max_size_mb"),
		LogMaxBackups:  v.GetInt("log_max_backups"),
		LogMaxAgeDays:  v.GetInt("log_max_age_days"),
	}
}

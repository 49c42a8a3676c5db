package config

import "os"

// Config holds the planner's runtime configuration, read from environment
// variables. Everything has a LAN-friendly default except the backup
// credentials, which leave backups disabled when unset.
type Config struct {
	Port     string
	DBPath   string
	BaseURL  string
	LogLevel string

	// Weather (Open-Meteo) for the selected weekend dates.
	WeatherLatitude  string
	WeatherLongitude string
	WeatherUnits     string

	// Encrypted state snapshots to S3-compatible storage.
	BackupEndpoint   string
	BackupBucket     string
	BackupRegion     string
	BackupAccessKey  string
	BackupSecretKey  string
	BackupPassphrase string
}

// FromEnv builds a Config from WEEKENDER_* environment variables.
func FromEnv() Config {
	cfg := Config{
		Port:             getenv("WEEKENDER_PORT", "8080"),
		DBPath:           getenv("WEEKENDER_DB_PATH", "weekender.db"),
		LogLevel:         getenv("WEEKENDER_LOG_LEVEL", "info"),
		WeatherLatitude:  os.Getenv("WEEKENDER_WEATHER_LAT"),
		WeatherLongitude: os.Getenv("WEEKENDER_WEATHER_LON"),
		WeatherUnits:     getenv("WEEKENDER_WEATHER_UNITS", "celsius"),
		BackupEndpoint:   os.Getenv("WEEKENDER_BACKUP_S3_ENDPOINT"),
		BackupBucket:     os.Getenv("WEEKENDER_BACKUP_S3_BUCKET"),
		BackupRegion:     getenv("WEEKENDER_BACKUP_S3_REGION", "auto"),
		BackupAccessKey:  os.Getenv("WEEKENDER_BACKUP_S3_ACCESS_KEY"),
		BackupSecretKey:  os.Getenv("WEEKENDER_BACKUP_S3_SECRET_KEY"),
		BackupPassphrase: os.Getenv("WEEKENDER_BACKUP_PASSPHRASE"),
	}
	cfg.BaseURL = getenv("WEEKENDER_BASE_URL", "http://localhost:"+cfg.Port)
	return cfg
}

// BackupConfigured reports whether enough is set to enable backups.
func (c Config) BackupConfigured() bool {
	return c.BackupBucket != "" && c.BackupAccessKey != "" && c.BackupSecretKey != "" && c.BackupPassphrase != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

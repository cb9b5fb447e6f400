package config

import "os"

type Config struct {
	Port        string
	DatabaseDSN string
}

// Load reads configuration from the environment. DATABASE_DSN is
// optional; without it the server keeps jobs in memory.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

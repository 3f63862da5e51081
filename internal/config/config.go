package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string
	MaxBodyKB    int
	RegistryFile string
	BureauFile   string
}

func Load() Config {
	port, _ := strconv.Atoi(getenv("PORT", "8080"))
	kb, _ := strconv.Atoi(getenv("MAX_BODY_KB", "64"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFile:      getenv("LOG_FILE", "logs/company-lookup.log"),
		MaxBodyKB:    kb,
		RegistryFile: getenv("REGISTRY_FILE", "data/companies_house.json"),
		BureauFile:   getenv("BUREAU_FILE", "data/credit_bureau.csv"),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package config

import (
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

type Config struct {
	Port          string
	DBDriver      string
	DBDSN         string
	MongoURI      string
	DBName        string
	Collection    string
	LogFile       string
	CORSOrigins   string
	SearchRateMax int
	SeedDemo      bool
}

// Load reads the environment, after merging an optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[warn] could not read .env: %v", err)
	}

	cfg := Config{
		Port:          getEnv("PORT", "8585"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBDSN:         getEnv("DB_DSN", "toystore.db"),
		MongoURI:      mongoURI(),
		DBName:        getEnv("DB_NAME", "assignment11DB"),
		Collection:    getEnv("DB_COLLECTION", "toys"),
		LogFile:       getEnv("LOG_FILE", "./toystore.log"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		SearchRateMax: 20,
		SeedDemo:      getEnv("SEED_DEMO", "false") == "true",
	}
	if n, err := strconv.Atoi(os.Getenv("SEARCH_RATE_MAX")); err == nil && n > 0 {
		cfg.SearchRateMax = n
	}
	if cfg.DBDriver != DriverSQLite && cfg.DBDriver != DriverMongo {
		log.Printf("[warn] unknown DB_DRIVER %q, using %s", cfg.DBDriver, DriverSQLite)
		cfg.DBDriver = DriverSQLite
	}

	log.Printf("[config] PORT=%s DB_DRIVER=%s DB_DSN=%s DB_NAME=%s DB_COLLECTION=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDriver, cfg.DBDSN, cfg.DBName, cfg.Collection, cfg.LogFile)
	return cfg
}

// mongoURI prefers MONGODB_URI. Otherwise credentials from DB_USER_NAME and
// DB_USER_PASSWORD are combined with MONGO_HOST into an SRV connection string.
func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	user := os.Getenv("DB_USER_NAME")
	host := os.Getenv("MONGO_HOST")
	if user == "" || host == "" {
		return "mongodb://localhost:27017"
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, os.Getenv("DB_USER_PASSWORD")),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

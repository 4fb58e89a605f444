package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything resolved from the environment at startup.
type Config struct {
	DSN       string
	Port      string
	JWTSecret string
	TokenTTL  time.Duration

	// UploadsDir is where property images live; served statically
	// under /uploads.
	UploadsDir string

	// CascadeRulesOnDelete controls whether deleting a property also
	// deletes its rule rows in the same transaction. Defaults to false,
	// which leaves orphan rule rows behind. Pending product decision.
	CascadeRulesOnDelete bool
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes"
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "boardinghouse_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Load reads .env if present and resolves the runtime configuration.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	dsn, err := resolveMySQLDSN()
	if err != nil {
		return Config{}, err
	}

	ttl := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("JWT_EXPIRE")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("⚠️  invalid JWT_EXPIRE %q, using 24h", raw)
		} else {
			ttl = parsed
		}
	}

	cfg := Config{
		DSN:                  dsn,
		Port:                 envOrDefault("PORT", "8080"),
		JWTSecret:            envOrDefault("JWT_SECRET", "dev-secret-only"),
		TokenTTL:             ttl,
		UploadsDir:           envOrDefault("UPLOADS_DIR", "./uploads"),
		CascadeRulesOnDelete: envBool("CASCADE_RULES_ON_DELETE"),
	}
	return cfg, nil
}

package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	JWTSecret string

	DB DBConfig

	CORSOrigins []string

	SeedSampleData bool

	MailAPIKey string
	MailFrom   string
}

// DBConfig holds connection parameters for the MySQL store.
// Passed explicitly to ConnectDB instead of being read ad-hoc.
type DBConfig struct {
	User     string
	Password string
	Host     string
	Name     string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-me"
	}

	var origins []string
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		for _, o := range strings.Split(env, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	} else {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:      jwtSecret,
		DB:             loadDBConfig(),
		CORSOrigins:    origins,
		SeedSampleData: os.Getenv("SEED_SAMPLE_DATA") == "1",
		MailAPIKey:     strings.TrimSpace(os.Getenv("MAIL_API_KEY")),
		MailFrom:       strings.TrimSpace(os.Getenv("MAIL_FROM")),
	}
}

func loadDBConfig() DBConfig {
	cfg := DBConfig{
		User:     strings.TrimSpace(os.Getenv("DB_USER")),
		Password: os.Getenv("DB_PASSWORD"),
		Host:     strings.TrimSpace(os.Getenv("DB_HOST")),
		Name:     strings.TrimSpace(os.Getenv("DB_NAME")),
	}
	if cfg.User == "" {
		cfg.User = "root"
	}
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1:3306"
	}
	if cfg.Name == "" {
		cfg.Name = "travelgo"
	}
	return cfg
}

package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort            = 8080
	DefaultCompanyName     = "Sistema Ganadero"
	DefaultArchiveSchedule = "0 6 * * *" // todos los días 06:00
)

type (
	Config struct {
		HTTP
		Database
		Log
		Company
		Archive
		Client
	}

	HTTP struct {
		Port            int
		ShutdownTimeout time.Duration
	}
	Database struct {
		DSN               string
		MigrationsEnabled bool
	}
	Log struct {
		Level  string
		Format string
		App    string
	}
	// Company son los datos del membrete de los PDF.
	Company struct {
		Name    string
		Address string
	}
	Archive struct {
		Dir      string // vacío = archivo deshabilitado
		Schedule string // cron de 5 campos
	}
	// Client lo usan los comandos que hablan con la API (formularios).
	Client struct {
		BaseURL string
		Timeout time.Duration
	}
)

// Load lee .env (si existe) y luego variables de entorno.
// Un .env ausente no es error.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	_ = godotenv.Load(envFiles...)

	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", DefaultPort)
	v.SetDefault("shutdown_timeout", "5s")
	v.SetDefault("db_dsn", "")
	v.SetDefault("migrations_enabled", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("app_name", "ganaderia-dashboard")
	v.SetDefault("nombre_empresa", DefaultCompanyName)
	v.SetDefault("direccion_empresa", "")
	v.SetDefault("report_archive_dir", "")
	v.SetDefault("report_archive_schedule", DefaultArchiveSchedule)
	v.SetDefault("api_base_url", "http://localhost:8080")
	v.SetDefault("api_timeout", "10s")

	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		HTTP: HTTP{
			Port:            v.GetInt("PORT"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Database: Database{
			DSN:               strings.TrimSpace(v.GetString("DB_DSN")),
			MigrationsEnabled: v.GetBool("MIGRATIONS_ENABLED"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			App:    v.GetString("APP_NAME"),
		},
		Company: Company{
			Name:    v.GetString("NOMBRE_EMPRESA"),
			Address: v.GetString("DIRECCION_EMPRESA"),
		},
		Archive: Archive{
			Dir:      strings.TrimSpace(v.GetString("REPORT_ARCHIVE_DIR")),
			Schedule: v.GetString("REPORT_ARCHIVE_SCHEDULE"),
		},
		Client: Client{
			BaseURL: v.GetString("API_BASE_URL"),
			Timeout: v.GetDuration("API_TIMEOUT"),
		},
	}
}

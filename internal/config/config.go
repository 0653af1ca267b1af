package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		AdminEmail   string `yaml:"admin_email"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	JWT struct {
		Secret string `yaml:"secret"`
		// TTLHours defaults to 168 (7 days) when zero.
		TTLHours int `yaml:"ttl_hours"`
	} `yaml:"jwt"`

	Storage struct {
		// Primary provider (S3/R2-compatible)
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Endpoint  string `yaml:"endpoint"`
		// Fallback provider (local disk)
		FallbackPath string `yaml:"fallback_path"`
	} `yaml:"storage"`

	SiteURL string `yaml:"site_url"`

	FirstAdminEmail    string `yaml:"-"`
	FirstAdminPassword string `yaml:"-"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or builds the whole config from environment
// variables when DATABASE_URL is set (the test path).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")

		cfg.Email.SMTPHost = "smtp.test.com"
		cfg.Email.SMTPPort = 587
		cfg.Email.FromEmail = "test@nexivo.com"
		cfg.Email.AdminEmail = "admin@nexivo.com"
		cfg.Email.TemplatesDir = "templates"

		cfg.Storage.FallbackPath = "./uploads"
	}

	if cfg.JWT.TTLHours == 0 {
		cfg.JWT.TTLHours = 7 * 24
	}
	if cfg.Email.AdminEmail == "" {
		cfg.Email.AdminEmail = cfg.Email.FromEmail
	}

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aussiebroadwan/storefront/pkg/firebasex"
)

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8000"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	DatabaseFile string `env:"DATABASE_FILE" envDefault:"storefront.db"`
	UploadDir    string `env:"UPLOAD_DIR"    envDefault:"uploads"`
	SeedDemoData bool   `env:"SEED_DEMO_DATA"`

	JWTSecretKey string `env:"JWT_SECRET_KEY"` // Required outside dev
	JWTIssuer    string `env:"JWT_ISSUER"     envDefault:"storefront"`
	FrontendURL  string `env:"FRONTEND_URL"   envDefault:"http://localhost:3000"`
	CookieSecure bool   `env:"COOKIE_SECURE"`

	// Federated login is disabled when FirebaseProjectID is empty.
	FirebaseProjectID   string        `env:"FIREBASE_PROJECT_ID"`
	FirebaseClientEmail string        `env:"FIREBASE_CLIENT_EMAIL"`
	FirebasePrivateKey  string        `env:"FIREBASE_PRIVATE_KEY"`
	FirebaseKeysURL     string        `env:"FIREBASE_KEYS_URL"   envDefault:"https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"`
	FederatedTimeout    time.Duration `env:"FEDERATED_TIMEOUT"   envDefault:"5s"`

	// Mail is logged instead of sent when EmailUser is empty.
	SMTPHost      string `env:"SMTP_HOST"       envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"SMTP_PORT"       envDefault:"587"`
	EmailUser     string `env:"EMAIL_USER"`
	EmailPass     string `env:"EMAIL_PASS"`
	MailQueueSize int    `env:"MAIL_QUEUE_SIZE" envDefault:"64"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.FirebasePrivateKey = firebasex.NormalizePrivateKey(cfg.FirebasePrivateKey)
	return cfg, nil
}

func (c Config) IsDev() bool { return strings.EqualFold(c.Env, "dev") }

// FederatedEnabled reports whether firebase login is configured.
func (c Config) FederatedEnabled() bool { return strings.TrimSpace(c.FirebaseProjectID) != "" }

// SMTPEnabled reports whether mail goes to a relay rather than the log.
func (c Config) SMTPEnabled() bool { return c.EmailUser != "" }

// Validate enforces the values the service cannot start without.
func (c Config) Validate() error {
	var errs []error

	if c.JWTSecretKey == "" && !c.IsDev() {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required outside dev"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.DatabaseFile == "" {
		errs = append(errs, errors.New("DATABASE_FILE is required"))
	}
	if c.UploadDir == "" {
		errs = append(errs, errors.New("UPLOAD_DIR is required"))
	}
	if c.MailQueueSize <= 0 {
		errs = append(errs, errors.New("MAIL_QUEUE_SIZE must be positive"))
	}
	if c.SMTPEnabled() && c.SMTPHost == "" {
		errs = append(errs, errors.New("SMTP_HOST is required when EMAIL_USER is set"))
	}
	if c.FederatedEnabled() {
		sa := firebasex.ServiceAccount{
			ProjectID:   c.FirebaseProjectID,
			ClientEmail: c.FirebaseClientEmail,
			PrivateKey:  c.FirebasePrivateKey,
		}
		if err := sa.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

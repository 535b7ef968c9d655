// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig          `mapstructure:"app"`
	HTTP          HTTPConfig         `mapstructure:"http"`
	Database      DatabaseConfig     `mapstructure:"database"`
	Stripe        StripeConfig       `mapstructure:"stripe"`
	SendGrid      SendGridConfig     `mapstructure:"sendgrid"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Places        PlacesConfig       `mapstructure:"places"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Products      ProductsConfig     `mapstructure:"products"`
	Logging       LoggingConfig      `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Addr            string   `mapstructure:"addr"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // milliseconds
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// --- Payment Provider Config ---
type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	Currency  string `mapstructure:"currency"`
	// Donation amount bounds in minor currency units.
	MinAmount int64 `mapstructure:"min_amount"`
	MaxAmount int64 `mapstructure:"max_amount"`
}

// --- Email Provider Config ---
type SendGridConfig struct {
	APIKey string `mapstructure:"api_key"`

	// <notifications@...>
	NotificationsEmail string `mapstructure:"notifications_email"`
	NotificationsName  string `mapstructure:"notifications_name"`
	// <hello@...>
	HelloEmail string `mapstructure:"hello_email"`
	HelloName  string `mapstructure:"hello_name"`
	// <orders@...>
	OrdersEmail string `mapstructure:"orders_email"`
	OrdersName  string `mapstructure:"orders_name"`
}

// --- Object Storage Config (digital product downloads) ---
type StorageConfig struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
	// Lifetime of an individual presigned URL, in hours.
	SignedURLTTLHours int `mapstructure:"signed_url_ttl_hours"`
	// Window during which a completed order may request downloads, in days.
	// Distinct from the URL TTL: links are re-signed on each verification.
	DownloadWindowDays int `mapstructure:"download_window_days"`
}

// --- Address Autocomplete Config ---
type PlacesConfig struct {
	APIKey      string `mapstructure:"api_key"`
	CountryBias string `mapstructure:"country_bias"`
	Timeout     int    `mapstructure:"timeout"` // milliseconds
}

// NotificationConfig holds recipients and switches for outbound email.
type NotificationConfig struct {
	AdminEmail     string `mapstructure:"admin_email"`
	SiteName       string `mapstructure:"site_name"`
	UnsubscribeURL string `mapstructure:"unsubscribe_url"`
	ContactPhone   string `mapstructure:"contact_phone"`
	Enabled        bool   `mapstructure:"enabled"`
}

// ProductsConfig points at the digital product catalog file.
type ProductsConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

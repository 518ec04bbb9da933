package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/fx"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DBConfig struct {
	DSN string `mapstructure:"dsn"`
	// MaxOpenConns bounds the shared connection pool.
	MaxOpenConns int `mapstructure:"max_open_conns"`
}

type RazorpayConfig struct {
	KeyID     string `mapstructure:"key_id"`
	KeySecret string `mapstructure:"key_secret"`
	BaseURL   string `mapstructure:"base_url"`
}

type ShopmozoConfig struct {
	PublicKey   string `mapstructure:"public_key"`
	PrivateKey  string `mapstructure:"private_key"`
	WarehouseID string `mapstructure:"warehouse_id"`
	BaseURL     string `mapstructure:"base_url"`
}

type WhatsAppConfig struct {
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Sender  string `mapstructure:"sender"`
	BaseURL string `mapstructure:"base_url"`
}

type AuthConfig struct {
	// JWTSecret signs login tokens and the 15-minute payment confirmation token.
	JWTSecret string `mapstructure:"jwt_secret"`
}

type Env string

const (
	EnvDev  Env = "dev"
	EnvProd Env = "prod"
)

type Config struct {
	Env         Env            `mapstructure:"env"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DBConfig       `mapstructure:"database"`
	Razorpay    RazorpayConfig `mapstructure:"razorpay"`
	Shopmozo    ShopmozoConfig `mapstructure:"shopmozo"`
	WhatsApp    WhatsAppConfig `mapstructure:"whatsapp"`
	Auth        AuthConfig     `mapstructure:"auth"`
	MetricsAddr string         `mapstructure:"metrics_addr"`
}

// Validate rejects configurations that cannot possibly run: the payment
// signature check and the confirmation token both depend on these secrets.
func (c *Config) Validate() error {
	if c.Razorpay.KeyID == "" || c.Razorpay.KeySecret == "" {
		return errors.New("razorpay key_id/key_secret are required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth jwt_secret is required")
	}
	return nil
}

func New() (*Config, error) {
	v := viper.New()
	// Allow overriding config file via env:
	// - APP_CONFIG_FILE: absolute or relative file path (e.g., /etc/app/prod.yaml)
	// - APP_CONFIG_NAME: config base name without extension (default: "config")
	if file := os.Getenv("APP_CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
	} else {
		cfgName := os.Getenv("APP_CONFIG_NAME")
		if cfgName == "" {
			cfgName = "config"
		}
		v.SetConfigName(cfgName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("env", "dev")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("database.dsn", "root:root@tcp(localhost:3306)/gauswarn?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("razorpay.base_url", "https://api.razorpay.com")
	v.SetDefault("shopmozo.base_url", "https://shipping-api.com/app/api/v1")
	v.SetDefault("shopmozo.warehouse_id", "43190")
	v.SetDefault("whatsapp.base_url", "https://bhashsms.com/api/sendmsg.php")
	v.SetDefault("whatsapp.sender", "BUZWAP")
	v.SetDefault("metrics_addr", ":90")

	if err := v.ReadInConfig(); err != nil {
		_ = err
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &c, nil
}

var Module = fx.Options(
	fx.Provide(New),
)

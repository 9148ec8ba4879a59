package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type StorageConfig struct {
	// Driver selects quote persistence: "dynamodb" or "localslot".
	Driver string
}

type AuthConfig struct {
	// JWTSecret verifies the role claim. When empty, requests are treated
	// as client-role unless a trusted proxy injects the role differently.
	JWTSecret string
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	AWS         AWSConfig
	Storage     StorageConfig
	Auth        AuthConfig
	Payments    PaymentsConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:               v.GetBool("PAYMENT_GATEWAY_MOCK"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "dynamodb"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "dynamodb", "localslot":
	default:
		return fmt.Errorf("STORAGE_DRIVER must be dynamodb or localslot, got %q", cfg.Storage.Driver)
	}
	return nil
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config is the service configuration read from the environment.
//
// Supported env vars:
//   - PORT (default: 8080)
//   - LOG_LEVEL (default: info)
//   - CATALOG_FILE (default: catalog.yaml)
//   - TOLERANCE_PERCENT (default: 5)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - BATCHES_TABLE, INVOICES_TABLE, PAYMENTS_TABLE, WORKFLOWS_TABLE
//   - NATS_URL (optional; events are only logged when empty)
//   - MERCADOPAGO_ACCESS_TOKEN, MERCADOPAGO_TEST_PAYER_EMAIL, MERCADOPAGO_TEST_PAYER_USER_ID
//   - PAYMENT_GATEWAY_MOCK or MERCADOPAGO_MOCK
type Config struct {
	Port             int     `validate:"min=1,max=65535"`
	LogLevel         string  `validate:"oneof=debug info warn error"`
	CatalogFile      string  `validate:"required"`
	TolerancePercent float64 `validate:"gte=0,lte=100"`
	NATSURL          string

	DynamoDB DynamoDB
	Tables   Tables
	Payment  Payment
}

type DynamoDB struct {
	Region          string `validate:"required"`
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type Tables struct {
	Batches   string `validate:"required"`
	Invoices  string `validate:"required"`
	Payments  string `validate:"required"`
	Workflows string `validate:"required"`
}

type Payment struct {
	Mock            bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// Load reads and validates the configuration.
func Load() (Config, error) {
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("PORT: %w", err)
	}
	tolerance, err := strconv.ParseFloat(getenvDefault("TOLERANCE_PERCENT", "5"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("TOLERANCE_PERCENT: %w", err)
	}

	cfg := Config{
		Port:             port,
		LogLevel:         strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		CatalogFile:      getenvDefault("CATALOG_FILE", "catalog.yaml"),
		TolerancePercent: tolerance,
		NATSURL:          os.Getenv("NATS_URL"),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		},
		Tables: Tables{
			Batches:   getenvDefault("BATCHES_TABLE", "batches"),
			Invoices:  getenvDefault("INVOICES_TABLE", "invoices"),
			Payments:  getenvDefault("PAYMENTS_TABLE", "payments"),
			Workflows: getenvDefault("WORKFLOWS_TABLE", "workflows"),
		},
		Payment: Payment{
			Mock:            envFlag("PAYMENT_GATEWAY_MOCK") || envFlag("MERCADOPAGO_MOCK"),
			AccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			TestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envFlag(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

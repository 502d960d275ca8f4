/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/suparena/billingtotal/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvTableName        = "BILLING_TABLE_NAME"
	EnvBillingAttribute = "BILLING_ATTRIBUTE"
	EnvPaymentField     = "BILLING_PAYMENT_FIELD"
	EnvRegion           = "AWS_REGION"
	EnvAccessKey        = "AWS_ACCESS_KEY"
	EnvSecretKey        = "AWS_SECRET_KEY"
	EnvEndpoint         = "DYNAMODB_ENDPOINT"
	EnvPageSize         = "SCAN_PAGE_SIZE"
	EnvConsistentRead   = "SCAN_CONSISTENT_READ"
	EnvLogLevel         = "LOG_LEVEL"
)

// Config holds everything the handler needs at startup.
type Config struct {
	TableName        string `yaml:"tableName"`
	BillingAttribute string `yaml:"billingAttribute"`
	PaymentField     string `yaml:"paymentField"`

	Region    string `yaml:"region"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Endpoint  string `yaml:"endpoint"`

	PageSize       int32 `yaml:"pageSize"`
	ConsistentRead bool  `yaml:"consistentRead"`

	LogLevel string `yaml:"logLevel"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		TableName:        "BillingInfo",
		BillingAttribute: "billing",
		PaymentField:     "payment",
		LogLevel:         "info",
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped when
// path is empty), then a .env file in the working directory if present, then
// the process environment. Later sources win.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// .env is optional; variables already set in the environment are kept.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		EnvTableName:        &c.TableName,
		EnvBillingAttribute: &c.BillingAttribute,
		EnvPaymentField:     &c.PaymentField,
		EnvRegion:           &c.Region,
		EnvAccessKey:        &c.AccessKey,
		EnvSecretKey:        &c.SecretKey,
		EnvEndpoint:         &c.Endpoint,
		EnvLogLevel:         &c.LogLevel,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPageSize); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return errors.NewConfigError(EnvPageSize, err.Error())
		}
		c.PageSize = int32(n)
	}
	if v, ok := lookup(EnvConsistentRead); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewConfigError(EnvConsistentRead, err.Error())
		}
		c.ConsistentRead = b
	}
	return nil
}

// Validate checks the configuration for values the handler cannot work with.
func (c Config) Validate() error {
	switch {
	case c.TableName == "":
		return errors.NewConfigError("TableName", "must not be empty")
	case c.BillingAttribute == "":
		return errors.NewConfigError("BillingAttribute", "must not be empty")
	case c.PaymentField == "":
		return errors.NewConfigError("PaymentField", "must not be empty")
	case c.PageSize < 0:
		return errors.NewConfigError("PageSize", "must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return errors.NewConfigError("LogLevel", err.Error())
	}
	return nil
}

// Level parses LogLevel into a zap level.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

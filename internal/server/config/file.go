package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/tuchka/internal/flagx"
	"github.com/dmitrijs2005/tuchka/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Durations accept "24h" style
// strings or integer nanoseconds. Absent keys keep the previous value.
type FileConfig struct {
	EndpointAddrHTTP  string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC  string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN       string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey         string         `json:"secret_key" yaml:"secret_key"`
	Issuer            string         `json:"issuer" yaml:"issuer"`
	Audience          string         `json:"audience" yaml:"audience"`
	ResetTokenTTL     timex.Duration `json:"reset_token_ttl" yaml:"reset_token_ttl"`
	MinPasswordLength int            `json:"min_password_length" yaml:"min_password_length"`
	RedisAddr         string         `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword     string         `json:"redis_password" yaml:"redis_password"`
	RedisDB           *int           `json:"redis_db" yaml:"redis_db"`
	S3RootUser        string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword    string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket          string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region          string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint    string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	OTLPEndpoint      string         `json:"otlp_endpoint" yaml:"otlp_endpoint"`
	LogLevel          string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays the file named by -c/-config, if any. Files ending in
// .yaml or .yml are read as YAML, everything else as JSON.
func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlagFrom(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.EndpointAddrHTTP, fc.EndpointAddrHTTP)
	setString(&cfg.EndpointAddrGRPC, fc.EndpointAddrGRPC)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.SecretKey, fc.SecretKey)
	setString(&cfg.Issuer, fc.Issuer)
	setString(&cfg.Audience, fc.Audience)
	if fc.ResetTokenTTL.Duration != 0 {
		cfg.ResetTokenTTL = fc.ResetTokenTTL.Duration
	}
	if fc.MinPasswordLength != 0 {
		cfg.MinPasswordLength = fc.MinPasswordLength
	}
	setString(&cfg.RedisAddr, fc.RedisAddr)
	setString(&cfg.RedisPassword, fc.RedisPassword)
	if fc.RedisDB != nil {
		cfg.RedisDB = *fc.RedisDB
	}
	setString(&cfg.S3RootUser, fc.S3RootUser)
	setString(&cfg.S3RootPassword, fc.S3RootPassword)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&cfg.OTLPEndpoint, fc.OTLPEndpoint)
	setString(&cfg.LogLevel, fc.LogLevel)
}

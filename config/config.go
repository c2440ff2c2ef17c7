// Package config loads the chaincode process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// Config controls how the chaincode process is started.
//
// With CHAINCODE_SERVER_ADDRESS unset the peer launches the process and the chaincode
// dials back to it. With it set the process runs as an external chaincode server.
type Config struct {
	Address             string `env:"CHAINCODE_SERVER_ADDRESS"`
	CCID                string `env:"CHAINCODE_ID"`
	TLSDisabled         bool   `env:"CHAINCODE_TLS_DISABLED"            envDefault:"true"`
	TLSKeyFile          string `env:"CHAINCODE_TLS_KEY_FILE"`
	TLSCertFile         string `env:"CHAINCODE_TLS_CERT_FILE"`
	TLSClientCACertFile string `env:"CHAINCODE_TLS_CLIENT_CA_CERT_FILE"`
	LogSpec             string `env:"HACKERFORM_LOG_SPEC"               envDefault:"info"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ServerMode reports whether the chaincode should run as an external service.
func (c Config) ServerMode() bool {
	return c.Address != ""
}

func (c Config) Validate() error {
	if !c.ServerMode() {
		return nil
	}
	if c.CCID == "" {
		return errors.New("CHAINCODE_ID is required when CHAINCODE_SERVER_ADDRESS is set")
	}
	if !c.TLSDisabled && (c.TLSKeyFile == "" || c.TLSCertFile == "") {
		return errors.New("CHAINCODE_TLS_KEY_FILE and CHAINCODE_TLS_CERT_FILE are required when TLS is enabled")
	}
	return nil
}

// TLSProperties reads the configured key material for the chaincode server.
func (c Config) TLSProperties() (shim.TLSProperties, error) {
	if c.TLSDisabled {
		return shim.TLSProperties{Disabled: true}, nil
	}
	key, err := os.ReadFile(c.TLSKeyFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("read tls key: %w", err)
	}
	cert, err := os.ReadFile(c.TLSCertFile)
	if err != nil {
		return shim.TLSProperties{}, fmt.Errorf("read tls cert: %w", err)
	}
	props := shim.TLSProperties{Key: key, Cert: cert}
	if c.TLSClientCACertFile != "" {
		ca, err := os.ReadFile(c.TLSClientCACertFile)
		if err != nil {
			return shim.TLSProperties{}, fmt.Errorf("read tls client ca cert: %w", err)
		}
		props.ClientCACerts = ca
	}
	return props, nil
}

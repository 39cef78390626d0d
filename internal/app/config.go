package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	coreconfig "premiumbot/core/config"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// StorageConfig points the persisted stores at their JSON files.
type StorageConfig struct {
	// Dir is prepended to relative file names below.
	Dir              string `yaml:"dir" envconfig:"STORAGE_DIR"`
	ServicesFile     string `yaml:"services_file" envconfig:"STORAGE_SERVICES_FILE"`
	WelcomeImageFile string `yaml:"welcome_image_file" envconfig:"STORAGE_WELCOME_IMAGE_FILE"`
}

// TeleBirrConfig holds the TeleBirr payout destination shown to customers.
type TeleBirrConfig struct {
	Phone string `yaml:"phone" envconfig:"PAYMENTS_TELEBIRR_PHONE"`
	Name  string `yaml:"name" envconfig:"PAYMENTS_TELEBIRR_NAME"`
}

// CBEConfig holds the CBE account details shown to customers.
type CBEConfig struct {
	Account string `yaml:"account" envconfig:"PAYMENTS_CBE_ACCOUNT"`
	Name    string `yaml:"name" envconfig:"PAYMENTS_CBE_NAME"`
}

// PaymentsConfig lists the manual payment destinations.
type PaymentsConfig struct {
	TeleBirr TeleBirrConfig `yaml:"telebirr"`
	CBE      CBEConfig      `yaml:"cbe"`
}

// Config aggregates core settings with storefront specific sections.
type Config struct {
	Core     coreconfig.Config `yaml:",inline"`
	Storage  StorageConfig     `yaml:"storage"`
	Payments PaymentsConfig    `yaml:"payments"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Core
}

// ServicesPath returns the resolved catalog file path.
func (c *Config) ServicesPath() string {
	return c.resolve(c.Storage.ServicesFile)
}

// WelcomeImagePath returns the resolved welcome image file path.
func (c *Config) WelcomeImagePath() string {
	return c.resolve(c.Storage.WelcomeImageFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Storage.Dir, name)
}

// LoadConfig reads configuration from a YAML file and environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if err := normalize(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func normalize(cfg *Config) error {
	if strings.TrimSpace(cfg.Storage.Dir) == "" {
		cfg.Storage.Dir = "data"
	}
	if strings.TrimSpace(cfg.Storage.ServicesFile) == "" {
		cfg.Storage.ServicesFile = "services.json"
	}
	if strings.TrimSpace(cfg.Storage.WelcomeImageFile) == "" {
		cfg.Storage.WelcomeImageFile = "welcome_image.json"
	}
	if strings.TrimSpace(cfg.Payments.TeleBirr.Phone) == "" && strings.TrimSpace(cfg.Payments.CBE.Account) == "" {
		return fmt.Errorf("payments: at least one payment destination is required")
	}
	return nil
}

// PaymentMethods lists methods with configured destinations, in display order.
func (c *Config) PaymentMethods() []string {
	var methods []string
	if strings.TrimSpace(c.Payments.TeleBirr.Phone) != "" {
		methods = append(methods, "TeleBirr")
	}
	if strings.TrimSpace(c.Payments.CBE.Account) != "" {
		methods = append(methods, "CBE")
	}
	return methods
}

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/jisho/internal/dictionary/jisho"
)

type Config struct {
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Templates    TemplatesConfig    `mapstructure:"templates"`
	Outputs      OutputsConfig      `mapstructure:"outputs"`
}

type DictionariesConfig struct {
	Jisho JishoConfig `mapstructure:"jisho"`
}

type JishoConfig struct {
	BaseURL   string `mapstructure:"base_url" validate:"required,http_url"`
	UserAgent string `mapstructure:"user_agent" validate:"required"`
}

type TemplatesConfig struct {
	VocabularySheetTemplate string `mapstructure:"vocabulary_sheet_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	Format         string `mapstructure:"format" validate:"oneof=table json yaml markdown"`
	SheetDirectory string `mapstructure:"sheet_directory" validate:"required,dir_or_missing"`
	// PDFFont is a TrueType (.ttf) font with Japanese glyphs, e.g. IPAexGothic. Sheets are exported
	// as markdown only while it is empty.
	PDFFont        string `mapstructure:"pdf_font" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/jisho")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("dictionaries.jisho.base_url", jisho.DefaultBaseURL)
	v.SetDefault("dictionaries.jisho.user_agent", jisho.DefaultUserAgent)
	v.SetDefault("templates.vocabulary_sheet_template", "")
	v.SetDefault("outputs.format", "table")
	v.SetDefault("outputs.sheet_directory", filepath.Join("outputs", "sheets"))
	v.SetDefault("outputs.pdf_font", "")

	// Environment variables take precedence over the config file
	if err := v.BindEnv("dictionaries.jisho.base_url", "JISHO_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind JISHO_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("dictionaries.jisho.user_agent", "JISHO_USER_AGENT"); err != nil {
		return nil, fmt.Errorf("failed to bind JISHO_USER_AGENT environment variable: %w", err)
	}
	if err := v.BindEnv("outputs.pdf_font", "JISHO_PDF_FONT"); err != nil {
		return nil, fmt.Errorf("failed to bind JISHO_PDF_FONT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		errorMsgs := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// JishoClientConfig returns the settings of the Jisho API client.
func (cfg *Config) JishoClientConfig() jisho.Config {
	return jisho.Config{
		BaseURL:   cfg.Dictionaries.Jisho.BaseURL,
		UserAgent: cfg.Dictionaries.Jisho.UserAgent,
	}
}

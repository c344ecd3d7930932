package main

import (
	"fmt"

	"github.com/at-ishikawa/jisho/internal/config"
	"github.com/at-ishikawa/jisho/internal/dictionary"
	"github.com/at-ishikawa/jisho/internal/dictionary/jisho"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// newDictionary is replaced in tests.
var newDictionary = func(cfg *config.Config) dictionary.Dictionary {
	return jisho.NewClient(cfg.JishoClientConfig())
}

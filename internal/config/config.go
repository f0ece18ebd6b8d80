package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings for a wiki workspace, normally read from
// wiki.yaml. The `yaml` tags map file keys to struct fields.
type Config struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"baseurl"`
	ContentDir  string `yaml:"content_dir"`
	OutputDir   string `yaml:"output_dir"`
	Template    string `yaml:"template"`
}

// Default returns the configuration used when no wiki.yaml exists.
func Default() Config {
	return Config{
		Title:      "Wiki",
		BaseURL:    "/",
		ContentDir: "wiki",
		OutputDir:  "public/html",
		Template:   "wiki-template.html",
	}
}

// Load reads a wiki.yaml file and fills in defaults for any field the file
// leaves empty. A missing file is not an error: the workspace simply runs on
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}

	if file.Title != "" {
		cfg.Title = file.Title
	}
	if file.Description != "" {
		cfg.Description = file.Description
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.ContentDir != "" {
		cfg.ContentDir = file.ContentDir
	}
	if file.OutputDir != "" {
		cfg.OutputDir = file.OutputDir
	}
	if file.Template != "" {
		cfg.Template = file.Template
	}

	return cfg, nil
}

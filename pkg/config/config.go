// Package config loads the build-time settings shared by the paramdoc
// command and library callers.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-paramdoc/pkg/render"
)

const (
	EnvParametersYAMLFile = "PARAMDOC_PARAMETERS_YAML_FILE"
	EnvRenderer           = "PARAMDOC_RENDERER"

	DefaultRenderer = "rst"
	DefaultSyntax   = "rst"
)

// Theme selects styling for the HTML renderer. TemplateDir holds wrapper
// templates that replace the bundled ones.
type Theme struct {
	Name        string            `yaml:"name"`
	Variant     string            `yaml:"variant"`
	Tokens      map[string]string `yaml:"tokens"`
	AssetPrefix string            `yaml:"asset_prefix"`
	Stylesheet  string            `yaml:"stylesheet"`
	TemplateDir string            `yaml:"template_dir"`
}

// Config mirrors the documentation build values the directive consumes.
type Config struct {
	ParametersYAMLFile string `yaml:"parameters_yaml_file"`
	Renderer           string `yaml:"renderer"`
	Syntax             string `yaml:"syntax"`
	AllowMarkup        bool   `yaml:"allow_markup"`
	Theme              Theme  `yaml:"theme"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Renderer: DefaultRenderer,
		Syntax:   DefaultSyntax,
	}
}

// Load reads a YAML config file. Relative parameters_yaml_file and
// theme.template_dir paths resolve against the directory holding the config
// file; URLs are kept as written.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if cfg.ParametersYAMLFile != "" && !IsRemote(cfg.ParametersYAMLFile) && !filepath.IsAbs(cfg.ParametersYAMLFile) {
		cfg.ParametersYAMLFile = filepath.Join(dir, cfg.ParametersYAMLFile)
	}
	if cfg.Theme.TemplateDir != "" && !filepath.IsAbs(cfg.Theme.TemplateDir) {
		cfg.Theme.TemplateDir = filepath.Join(dir, cfg.Theme.TemplateDir)
	}
	return cfg, nil
}

// IsRemote reports whether location is an http or https URL.
func IsRemote(location string) bool {
	location = strings.TrimSpace(location)
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// ApplyEnv overrides values from the environment. lookup defaults to
// os.LookupEnv.
func (c Config) ApplyEnv(lookup func(string) (string, bool)) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvParametersYAMLFile); ok && strings.TrimSpace(v) != "" {
		c.ParametersYAMLFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvRenderer); ok && strings.TrimSpace(v) != "" {
		c.Renderer = strings.TrimSpace(v)
	}
	return c
}

// Validate reports configuration mistakes that would fail every render.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Renderer) == "" {
		errs = append(errs, errors.New("config: renderer is required"))
	}
	switch c.Syntax {
	case "rst", "myst", "":
	default:
		errs = append(errs, fmt.Errorf("config: unsupported syntax %q", c.Syntax))
	}
	return errors.Join(errs...)
}

// RendererTheme converts the theme section into the renderer configuration
// consumed by the HTML renderer. It returns nil when no theme is named.
func (c Config) RendererTheme() *theme.RendererConfig {
	t := c.Theme
	if t.Name == "" {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:   t.Name,
		Variant: t.Variant,
		Tokens:  copyStringMap(t.Tokens),
	}
	if len(t.Tokens) > 0 {
		cfg.CSSVars = make(map[string]string, len(t.Tokens))
		for key, value := range t.Tokens {
			cfg.CSSVars["--"+strings.TrimPrefix(key, "--")] = value
		}
	}

	prefix := strings.TrimRight(t.AssetPrefix, "/")
	stylesheet := t.Stylesheet
	cfg.AssetURL = func(key string) string {
		if key != render.StylesheetAsset || stylesheet == "" {
			return ""
		}
		if prefix == "" || strings.Contains(stylesheet, "://") || strings.HasPrefix(stylesheet, "/") {
			return stylesheet
		}
		return prefix + "/" + stylesheet
	}
	return cfg
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-paramdoc/internal/paramdata/loader"
	"github.com/goliatone/go-paramdoc/pkg/config"
	"github.com/goliatone/go-paramdoc/pkg/orchestrator"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/render"
	"github.com/goliatone/go-paramdoc/pkg/renderers/html"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	logger     *logrus.Logger
	logLevel   string
	configPath string
	dataFile   string
	renderer   string
	timeout    time.Duration

	// lookupEnv is swapped in tests.
	lookupEnv func(string) (string, bool)
}

func newRootCmd(logger *logrus.Logger) *cobra.Command {
	opts := &rootOptions{logger: logger, lookupEnv: os.LookupEnv}

	cmd := &cobra.Command{
		Use:           "paramdoc",
		Short:         "Render class parameter listings from YAML data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q", opts.logLevel)
			}
			opts.logger.SetLevel(level)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&opts.configPath, "config", "", "paramdoc YAML config file")
	flags.StringVar(&opts.dataFile, "data", "", "parameter data file (overrides parameters_yaml_file)")
	flags.StringVar(&opts.renderer, "renderer", "", "output renderer (rst, markdown, html)")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout for remote data files")

	cmd.AddCommand(
		newRenderCmd(opts),
		newClassesCmd(opts),
		newExpandCmd(opts),
		newImportOpenAPICmd(opts),
	)
	return cmd
}

// config merges the config file, the environment and the command line, in
// that order.
func (o *rootOptions) config() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.ApplyEnv(o.lookupEnv)
	if o.dataFile != "" {
		cfg.ParametersYAMLFile = o.dataFile
	}
	if o.renderer != "" {
		cfg.Renderer = o.renderer
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	o.logger.WithFields(logrus.Fields{
		"data":     cfg.ParametersYAMLFile,
		"renderer": cfg.Renderer,
	}).Debug("configuration resolved")
	return cfg, nil
}

// source maps the configured data location to a loader source and the loader
// able to read it.
func (o *rootOptions) source(cfg config.Config) (paramdata.Source, paramdata.Loader, error) {
	location := strings.TrimSpace(cfg.ParametersYAMLFile)
	if config.IsRemote(location) {
		src, err := paramdata.SourceFromURL(location)
		if err != nil {
			return nil, nil, err
		}
		options := paramdata.NewLoaderOptions(paramdata.WithHTTPFallback(o.timeout))
		return src, loader.New(options), nil
	}
	return paramdata.SourceFromFile(location), loader.New(paramdata.LoaderOptions{}), nil
}

// registry builds the renderer registry with the configured html wrapper
// templates and theme.
func (o *rootOptions) registry(cfg config.Config) (*render.Registry, error) {
	options := []html.Option{html.WithDefaultTheme(cfg.RendererTheme())}
	if cfg.Theme.TemplateDir != "" {
		options = append(options, html.WithTemplateDir(cfg.Theme.TemplateDir))
	}
	return orchestrator.DefaultRegistry(options...)
}

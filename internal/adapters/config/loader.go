package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// configFile is the YAML shape of slate.yaml.
type configFile struct {
	Root      string `yaml:"root"`
	Templates struct {
		Layouts    string   `yaml:"layouts"`
		Partials   string   `yaml:"partials"`
		Pages      string   `yaml:"pages"`
		Extensions []string `yaml:"extensions"`
	} `yaml:"templates"`
	Cache struct {
		Dir        string `yaml:"dir"`
		MaxEntries int    `yaml:"max_entries"`
		Disabled   bool   `yaml:"disabled"`
	} `yaml:"cache"`
	Build struct {
		Parallelism int `yaml:"parallelism"`
	} `yaml:"build"`
}

// Loader reads and resolves slate.yaml.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest slate.yaml at or above cwd and returns the resolved
// configuration with defaults applied.
func (l *Loader) Load(cwd string) (*Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- configPath is discovered by walking up from cwd
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file configFile
	if parseErr := yaml.Unmarshal(raw, &file); parseErr != nil {
		return nil, zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	cfg := resolve(configPath, &file)
	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if cfg.Cache.Disabled {
		l.Logger.Warn("artifact store disabled, every run recompiles from source")
	}

	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func resolve(configPath string, file *configFile) *Config {
	cfg := &Config{
		Root: resolveRoot(configPath, file.Root),
		Templates: Templates{
			Layouts:    defaultString(file.Templates.Layouts, "layouts"),
			Partials:   defaultString(file.Templates.Partials, "partials"),
			Pages:      defaultString(file.Templates.Pages, "pages"),
			Extensions: normalizeExtensions(file.Templates.Extensions),
		},
		Cache: Cache{
			Dir:        defaultString(file.Cache.Dir, filepath.Join(domain.SlateDirName, domain.CacheDirName)),
			MaxEntries: file.Cache.MaxEntries,
			Disabled:   file.Cache.Disabled,
		},
		Build: Build{
			Parallelism: file.Build.Parallelism,
		},
	}
	return cfg
}

func validate(cfg *Config) error {
	if cfg.Cache.MaxEntries < 0 {
		return zerr.With(zerr.New("cache.max_entries must not be negative"), "max_entries", cfg.Cache.MaxEntries)
	}
	if cfg.Build.Parallelism < 0 {
		return zerr.With(zerr.New("build.parallelism must not be negative"), "parallelism", cfg.Build.Parallelism)
	}
	return nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(configDir, configuredRoot))
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return []string{".html", ".tmpl"}
	}

	normalized := make([]string, len(exts))
	for i, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized[i] = ext
	}
	return normalized
}

package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/strfind/pkg/errors"
	"github.com/arthur-debert/strfind/pkg/logging"
	"github.com/arthur-debert/strfind/pkg/pathfilter"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName names the configuration directory and the env prefix
	AppName = "strfind"
	// ProjectFileName is looked up in the working directory
	ProjectFileName = ".strfind.toml"
	// EnvPrefix starts every environment override
	EnvPrefix = "STRFIND_"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// LoadOptions selects the sources Load merges
type LoadOptions struct {
	// ConfigFile is an explicit file; it must exist when set
	ConfigFile string
	// WorkDir is searched for the project file; empty means "."
	WorkDir string
	// UserFile overrides the XDG user file location
	UserFile string
	// Overrides are dotted keys applied last, typically from flags
	Overrides map[string]interface{}
}

// UserConfigPath returns the location of the user configuration file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// Load merges every configuration source and decodes the result.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger(logging.ComponentConfig)
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	var sources []string

	userFile := opts.UserFile
	if userFile == "" {
		userFile = UserConfigPath()
	}
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}

	for _, path := range []string{userFile, filepath.Join(workDir, ProjectFileName)} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
		sources = append(sources, path)
	}

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file '%s' not found", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		sources = append(sources, opts.ConfigFile)
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}

	cfg.Search.Exclude = pathfilter.SplitNames(cfg.Search.Exclude...)
	cfg.Sources = sources

	logger.Debug().
		Strs("sources", sources).
		Str("filename", cfg.Search.Filename).
		Str("output", cfg.Search.Output).
		Strs("exclude", cfg.Search.Exclude).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from '%s'", path).
			WithDetail("path", path)
	}
	return nil
}

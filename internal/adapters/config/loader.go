// Package config provides the configuration loader for the tagger.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/ecstagger/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override, e.g. ECSTAGGER_LOOKUP_TIMEOUT.
	EnvPrefix = "ECSTAGGER_"
	// EnvConfigFile names the optional YAML config file.
	EnvConfigFile = EnvPrefix + "CONFIG"
)

// Loader implements ports.ConfigLoader.
// Sources are applied in order: defaults, YAML file, environment.
type Loader struct {
	// Path is the optional YAML file. Empty means defaults and environment only.
	Path string
}

// NewLoader creates a new Loader reading the given file, if any.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// Load merges all sources and validates the result.
func (l *Loader) Load() (*domain.Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(domain.DefaultConfig(), "koanf"), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load defaults")
	}

	if l.Path != "" {
		if err := k.Load(yamlFile{path: l.Path}, nil); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to load config file"), "path", l.Path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, zerr.Wrap(err, "failed to load environment variables")
	}

	var cfg domain.Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}); err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, zerr.Wrap(err, "failed to decode configuration"))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Join(domain.ErrConfigInvalid, err)
	}

	return &cfg, nil
}

// transformEnvKey converts environment variable names to koanf paths.
// For example: ECSTAGGER_LOOKUP_TIMEOUT -> lookup.timeout.
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, field, found := strings.Cut(key, "_")
	if !found || section == "" || field == "" {
		return key, value
	}
	return section + "." + field, value
}

// yamlFile is a koanf.Provider reading a YAML document with yaml.v3.
type yamlFile struct {
	path string
}

// ReadBytes returns the raw file contents.
func (f yamlFile) ReadBytes() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Join(domain.ErrConfigReadFailed, err)
	}
	return data, nil
}

// Read returns the parsed document as a nested map.
func (f yamlFile) Read() (map[string]any, error) {
	data, err := f.ReadBytes()
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(domain.ErrConfigParseFailed, err)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

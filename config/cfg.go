package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"ffgen/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	StylesheetConfig struct {
		Match          common.MatchMode            `yaml:"match" validate:"gte=0,lte=1"`
		UnclosedHeader common.UnclosedHeaderPolicy `yaml:"unclosed_header" validate:"gte=0,lte=1"`
	}

	OutputConfig struct {
		FileName         string `yaml:"file_name" validate:"required"`
		DescriptorType   string `yaml:"descriptor_type" validate:"required"`
		DescriptorModule string `yaml:"descriptor_module" validate:"required"`
		CollectionName   string `yaml:"collection_name" validate:"required"`
		TemplatePath     string `yaml:"template_path" sanitize:"assure_file_access"`
	}

	AssetsConfig struct {
		Check bool `yaml:"check"`
	}

	GeneratorConfig struct {
		Stylesheet StylesheetConfig `yaml:"stylesheet"`
		Output     OutputConfig     `yaml:"output"`
		Assets     AssetsConfig     `yaml:"assets"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Generator GeneratorConfig `yaml:"generator"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

// identifiers we put into generated source as is
var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

func checkIdentifiers(sl validator.StructLevel) {
	out, ok := sl.Current().Interface().(OutputConfig)
	if !ok {
		return
	}
	if !identPattern.MatchString(out.DescriptorType) {
		sl.ReportError(out.DescriptorType, "DescriptorType", "descriptor_type", "identifier", "")
	}
	if !identPattern.MatchString(out.CollectionName) {
		sl.ReportError(out.CollectionName, "CollectionName", "collection_name", "identifier", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg.Generator.Output, gencfg.WithAdditionalChecks(checkIdentifiers)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template and
// performs validation. Empty path means defaults only.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare expands embedded configuration template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}

package gtfsrdf

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type GTFSConfig struct {
	Path string `yaml:"path" validate:"omitempty"`
}

type RDFConfig struct {
	BaseURI    string `yaml:"baseURI" validate:"omitempty,url"`
	LicenseURI string `yaml:"licenseURI" validate:"omitempty,url"`
	SourceURI  string `yaml:"sourceURI" validate:"omitempty,url"`
	SplitSize  int    `yaml:"splitSize" validate:"gte=0"`
	Format     string `yaml:"format" validate:"omitempty,oneof=turtle ntriples"`
	OutPath    string `yaml:"outPath"`
}

type AppConfig struct {
	GTFS GTFSConfig `yaml:"gtfs"`
	RDF  RDFConfig  `yaml:"rdf"`
}

var Config AppConfig

// LoadAppConfig loads config.yml when present. A missing file is not an
// error: flags resolved by the CLI layer can supply everything, and Validate
// runs after those overrides.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Validate checks the fully resolved configuration before a run.
func (c *AppConfig) Validate() error {
	if c.RDF.BaseURI == "" {
		return fmt.Errorf("baseURI is required")
	}
	if strings.HasSuffix(c.RDF.BaseURI, "/") {
		return fmt.Errorf("baseURI must not end with %q", "/")
	}
	if c.RDF.Format == "" {
		c.RDF.Format = "turtle"
	}
	v := validator.New()
	if err := v.Struct(c.RDF); err != nil {
		return err
	}
	return v.Struct(c.GTFS)
}

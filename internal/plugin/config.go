package plugin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/signalfx/defaults"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/munin-contrib/munin-mysqlstats/internal/utils/filter"
)

// Storage engine names are restricted to word characters so that a
// typo'd munin-node config fails at parse time instead of silently
// matching nothing.
var engineNameRE = regexp.MustCompile(`^\w+$`)

// Config holds the plugin settings resolved from the munin-node
// environment.  It is built and validated once, before any graph is
// constructed.
type Config struct {
	// Server address.  An empty host selects the local unix socket.
	Host string `yaml:"host"`
	Port int    `yaml:"port" default:"3306" validate:"min=1,max=65535"`

	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password" neverLog:"true"`

	// Graph ids to report on.  An empty include list enables all
	// graphs; the exclude list always wins.
	IncludeGraphs []string `yaml:"include_graphs"`
	ExcludeGraphs []string `yaml:"exclude_graphs"`

	// Storage engines whose engine-specific graphs are considered.
	// Same include/exclude semantics as the graph lists.
	IncludeEngines []string `yaml:"include_engine"`
	ExcludeEngines []string `yaml:"exclude_engine"`
}

// ConfigFromEnv builds the plugin configuration from munin-node
// environment variables.  lookup is os.LookupEnv in production.
func ConfigFromEnv(lookup func(string) (string, bool)) (*Config, error) {
	conf := &Config{}

	if v, ok := lookup("host"); ok {
		conf.Host = v
	}
	if v, ok := lookup("port"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Errorf("invalid port %q", v)
		}
		conf.Port = port
	}
	if v, ok := lookup("database"); ok {
		conf.Database = v
	}
	if v, ok := lookup("user"); ok {
		conf.User = v
	}
	if v, ok := lookup("password"); ok {
		conf.Password = v
	}
	if v, ok := lookup("include_graphs"); ok {
		conf.IncludeGraphs = splitList(v)
	}
	if v, ok := lookup("exclude_graphs"); ok {
		conf.ExcludeGraphs = splitList(v)
	}
	if v, ok := lookup("include_engine"); ok {
		conf.IncludeEngines = splitEngineList(v)
	}
	if v, ok := lookup("exclude_engine"); ok {
		conf.ExcludeEngines = splitEngineList(v)
	}

	if err := defaults.Set(conf); err != nil {
		return nil, err
	}
	if err := validateStruct(conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the cross-field rules that struct tags cannot
// express.
func (c *Config) Validate() error {
	for _, names := range [][]string{c.IncludeEngines, c.ExcludeEngines} {
		if bad := filter.ValidateNames(names, engineNameRE); bad != "" {
			return errors.Errorf("invalid storage engine name %q", bad)
		}
	}
	return nil
}

// validateStruct uses the `validate` struct tags to do standard
// validation.
func validateStruct(conf interface{}) error {
	err := validator.New().Struct(conf)
	if err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			var msgs []string
			for _, e := range ves {
				msgs = append(msgs, fmt.Sprintf("validation error in field '%s': %s", e.Field(), e.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Engine names are matched case-insensitively against the server's
// engine list, which this plugin normalizes to lower case.
func splitEngineList(raw string) []string {
	items := splitList(raw)
	for i := range items {
		items[i] = strings.ToLower(items[i])
	}
	return items
}

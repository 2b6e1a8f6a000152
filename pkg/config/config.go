package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oarkflow/bcl"
	"github.com/oarkflow/json"
	"github.com/oarkflow/squealx"
	"github.com/oarkflow/squealx/connection"
	"gopkg.in/yaml.v3"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// InputConfig locates the interchange files to process.
type InputConfig struct {
	Path       string   `json:"path" yaml:"path"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Pattern    string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MaxFiles   int      `json:"max_files,omitempty" yaml:"max_files,omitempty"`
	Recursive  bool     `json:"recursive,omitempty" yaml:"recursive,omitempty"`
}

// OutputConfig controls the flattened artifacts written per run.
type OutputConfig struct {
	Dir          string `json:"dir" yaml:"dir"`
	BusinessJSON *bool  `json:"business_json,omitempty" yaml:"business_json,omitempty"`
}

// DatabaseConfig describes an optional relational destination.
type DatabaseConfig struct {
	Driver         string `json:"driver" yaml:"driver"`
	Host           string `json:"host" yaml:"host"`
	Port           int    `json:"port" yaml:"port"`
	Username       string `json:"username" yaml:"username"`
	Password       string `json:"password" yaml:"password"`
	Database       string `json:"database" yaml:"database"`
	ClaimsTable    string `json:"claims_table,omitempty" yaml:"claims_table,omitempty"`
	DetailsTable   string `json:"details_table,omitempty" yaml:"details_table,omitempty"`
	CompaniesTable string `json:"companies_table,omitempty" yaml:"companies_table,omitempty"`
	Truncate       bool   `json:"truncate,omitempty" yaml:"truncate,omitempty"`
	AutoCreate     bool   `json:"auto_create,omitempty" yaml:"auto_create,omitempty"`
	MaxIdleConns   int    `json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxOpenConns   int    `json:"max_open_conns,omitempty" yaml:"max_open_conns,omitempty"`
}

// RunConfig tunes how a batch executes.
type RunConfig struct {
	ReceiveDate    string `json:"receive_date,omitempty" yaml:"receive_date,omitempty"`
	WorkerCount    int    `json:"worker_count,omitempty" yaml:"worker_count,omitempty"`
	Buffer         int    `json:"buffer,omitempty" yaml:"buffer,omitempty"`
	CheckpointFile string `json:"checkpoint_file,omitempty" yaml:"checkpoint_file,omitempty"`
	Schedule       string `json:"schedule,omitempty" yaml:"schedule,omitempty"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

type Config struct {
	Input    InputConfig     `json:"input" yaml:"input"`
	Output   OutputConfig    `json:"output" yaml:"output"`
	Database *DatabaseConfig `json:"database,omitempty" yaml:"database,omitempty"`
	Run      RunConfig       `json:"run" yaml:"run"`
	Server   ServerConfig    `json:"server" yaml:"server"`
}

// Load reads a config file, picking the decoder from the extension.
func Load(path string) (*Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return load(path, yaml.Unmarshal)
	case ".json":
		return load(path, func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	case ".bcl":
		return load(path, func(data []byte, v any) error {
			_, err := bcl.Unmarshal(data, v)
			return err
		})
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// LoadFromString decodes raw config text, useful for tests.
func LoadFromString(content, format string) (*Config, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return decode([]byte(content), yaml.Unmarshal)
	case "json":
		return decode([]byte(content), func(data []byte, v any) error {
			return json.Unmarshal(data, v)
		})
	case "bcl":
		return decode([]byte(content), func(data []byte, v any) error {
			_, err := bcl.Unmarshal(data, v)
			return err
		})
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func load(path string, fn func([]byte, any) error) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decode(raw, fn)
}

func decode(data []byte, fn func([]byte, any) error) (*Config, error) {
	var cfg Config
	if err := fn(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, cfg.Validate()
}

// ApplyDefaults fills unset fields with working values.
func (cfg *Config) ApplyDefaults() {
	if cfg.Run.WorkerCount <= 0 {
		cfg.Run.WorkerCount = 4
	}
	if cfg.Run.Buffer <= 0 {
		cfg.Run.Buffer = 64
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Database != nil {
		if cfg.Database.ClaimsTable == "" {
			cfg.Database.ClaimsTable = "edi_claims"
		}
		if cfg.Database.DetailsTable == "" {
			cfg.Database.DetailsTable = "edi_claim_details"
		}
		if cfg.Database.CompaniesTable == "" {
			cfg.Database.CompaniesTable = "edi_companies"
		}
	}
}

// Validate checks the invariants the pipeline depends on.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.Input.Path == "" {
		return fmt.Errorf("input.path is required")
	}
	if cfg.Output.Dir == "" && cfg.Database == nil {
		return fmt.Errorf("either output.dir or database must be configured")
	}
	if cfg.Database != nil && cfg.Database.Driver == "" {
		return fmt.Errorf("database.driver is required when database is configured")
	}
	return nil
}

// WriteBusinessJSON reports whether the canonical claim JSON should be
// produced. Defaults to true.
func (cfg *Config) WriteBusinessJSON() bool {
	if cfg.Output.BusinessJSON == nil {
		return true
	}
	return *cfg.Output.BusinessJSON
}

// OpenDB connects to the configured destination database.
func OpenDB(cfg DatabaseConfig) (*squealx.DB, error) {
	db, _, err := connection.FromConfig(squealx.Config{
		Driver:      cfg.Driver,
		Host:        cfg.Host,
		Port:        cfg.Port,
		Username:    cfg.Username,
		Password:    cfg.Password,
		Database:    cfg.Database,
		MaxIdleCons: cfg.MaxIdleConns,
		MaxOpenCons: cfg.MaxOpenConns,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

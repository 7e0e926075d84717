// Package loader reads ServiceNow CMDB export files into the catalog.
// All files use the {"records": [...]} envelope with string-typed
// booleans. Missing files are logged and skipped; malformed records are
// counted and skipped. Loading never fails the whole run over bad data.
package loader

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Default export file names, matching what a ServiceNow table export
// produces.
const (
	DefaultTablesFile   = "sys_db_object.json"
	DefaultRelTypesFile = "cmdb_rel_type.json"
	DefaultPackagesFile = "sys_package.json"
)

// DefaultSuggestionFiles lists the suggestion sources in ingestion order.
// Order matters: later files overwrite earlier edges for the same pair.
var DefaultSuggestionFiles = []string{
	"cmdb_rel_type_suggest.json",
	"em_suggested_relation_type.json",
}

// Config locates the export files.
type Config struct {
	DataDir         string
	TablesFile      string
	RelTypesFile    string
	PackagesFile    string
	SuggestionFiles []string
}

// ApplyDefaults fills empty fields with the default file names.
func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.TablesFile == "" {
		c.TablesFile = DefaultTablesFile
	}
	if c.RelTypesFile == "" {
		c.RelTypesFile = DefaultRelTypesFile
	}
	if c.PackagesFile == "" {
		c.PackagesFile = DefaultPackagesFile
	}
	if len(c.SuggestionFiles) == 0 {
		c.SuggestionFiles = append([]string(nil), DefaultSuggestionFiles...)
	}
}

// Result reports what was loaded.
type Result struct {
	Tables      int
	RelTypes    int
	Packages    int
	Suggestions int
	// Skipped counts malformed records per file.
	Skipped map[string]int
	// MissingFiles lists export files that were not found.
	MissingFiles []string
}

// envelope is the outer shape of every export file.
type envelope struct {
	Records []json.RawMessage `json:"records"`
}

// Loader reads export files into a catalog store.
type Loader struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a loader. A nil logger falls back to slog.Default.
func New(cfg Config, logger *slog.Logger) *Loader {
	cfg.ApplyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{cfg: cfg, logger: logger}
}

// readEnvelope reads and unwraps one export file. A missing file returns
// (nil, false, nil); only unreadable or unparseable files are errors.
func (l *Loader) readEnvelope(name string) ([]json.RawMessage, bool, error) {
	path := filepath.Join(l.cfg.DataDir, name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		l.logger.Warn("export file not found, continuing without it", "file", path)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return env.Records, true, nil
}

// strBool converts ServiceNow's string booleans.
func strBool(s string) bool { return strings.EqualFold(s, "true") }

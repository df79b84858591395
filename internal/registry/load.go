package registry

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"stencil/internal/logging"
)

// fileEntry is the JSON shape of one reference row.
type fileEntry struct {
	Name          string   `json:"name"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Aliases       []string `json:"aliases"`
	ParentName    string   `json:"parent_name"`
	ParentAliases []string `json:"parent_aliases"`
	Email         string   `json:"email"`
}

// LoadFile reads a reference table from a CSV or JSON file, chosen by
// extension. Rows without a name are skipped; unknown columns are ignored.
func LoadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry file: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(file)
	case ".csv":
		return loadCSV(file)
	default:
		return nil, fmt.Errorf("registry file %s: unsupported extension", filepath.Base(path))
	}
}

// LoadOrBuiltin loads a registry from path, falling back to the provided
// built-in table when the path is empty, missing, or unparsable. Load
// failures degrade with a warning rather than failing startup.
func LoadOrBuiltin(path string, builtin []Entry, logger *slog.Logger, kind string) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	if strings.TrimSpace(path) == "" {
		logger.Debug("registry path not configured, using built-in table",
			logging.String("registry", kind))
		return New(builtin)
	}
	entries, err := LoadFile(path)
	if err != nil || len(entries) == 0 {
		if err == nil {
			err = errors.New("no usable rows")
		}
		logger.Warn("registry load failed, using built-in table",
			logging.String("registry", kind),
			logging.String("path", path),
			logging.Error(err))
		return New(builtin)
	}
	logger.Info("registry loaded",
		logging.String("registry", kind),
		logging.String("path", path),
		logging.Int("entries", len(entries)))
	return New(entries)
}

func loadJSON(r io.Reader) ([]Entry, error) {
	var rows []fileEntry
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("parse registry json: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		if entry, ok := row.toEntry(); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func loadCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read registry header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var entries []Entry
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read registry row: %w", err)
		}
		row := fileEntry{
			Name:          field(record, "name"),
			FirstName:     field(record, "first_name"),
			LastName:      field(record, "last_name"),
			Aliases:       splitList(field(record, "aliases")),
			ParentName:    field(record, "parent_name"),
			ParentAliases: splitList(field(record, "parent_aliases")),
			Email:         field(record, "email"),
		}
		if entry, ok := row.toEntry(); ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (f fileEntry) toEntry() (Entry, bool) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return Entry{}, false
	}
	parents := make([]string, 0, len(f.ParentAliases)+1)
	if parent := strings.TrimSpace(f.ParentName); parent != "" {
		parents = append(parents, parent)
	}
	for _, alias := range f.ParentAliases {
		if alias = strings.TrimSpace(alias); alias != "" {
			parents = append(parents, alias)
		}
	}
	return Entry{
		CanonicalName:  name,
		FirstName:      strings.TrimSpace(f.FirstName),
		LastName:       strings.TrimSpace(f.LastName),
		Aliases:        cleanList(f.Aliases),
		ParentNames:    parents,
		EmailLocalPart: emailLocal(f.Email),
	}, true
}

// splitList splits a delimited alias cell on pipes or semicolons.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	value = strings.ReplaceAll(value, ";", "|")
	return strings.Split(value, "|")
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func emailLocal(email string) string {
	email = strings.TrimSpace(email)
	if at := strings.IndexByte(email, '@'); at >= 0 {
		email = email[:at]
	}
	return email
}

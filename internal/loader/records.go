package loader

import (
	"encoding/json"

	"github.com/edgewise-labs/cmdbmap/internal/catalog"
)

// Raw record shapes as they appear in the export files.

type tableRecord struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	SuperClass   string `json:"super_class"` // sys_id reference
	SysID        string `json:"sys_id"`
	Scope        string `json:"sys_scope"`
	Package      string `json:"sys_package"`
	IsExtendable string `json:"is_extendable"`
}

type relTypeRecord struct {
	SysID            string `json:"sys_id"`
	Name             string `json:"name"`
	ParentDescriptor string `json:"parent_descriptor"`
	ChildDescriptor  string `json:"child_descriptor"`
	SysName          string `json:"sys_name"`
	Scope            string `json:"sys_scope"`
}

type packageRecord struct {
	SysID           string `json:"sys_id"`
	Source          string `json:"source"`
	Name            string `json:"name"`
	Version         string `json:"version"`
	LicenseCategory string `json:"license_category"`
	ClassName       string `json:"sys_class_name"`
	Active          string `json:"active"`
}

type suggestionRecord struct {
	BaseClass      string `json:"base_class"`
	DependentClass string `json:"dependent_class"`
	RelType        string `json:"cmdb_rel_type"`
	Parent         string `json:"parent"`
}

// Load reads every configured export file into a fresh catalog store.
func (l *Loader) Load() (*catalog.Store, *Result, error) {
	store := catalog.NewStore()
	res := &Result{Skipped: make(map[string]int)}

	if err := l.loadTables(store, res); err != nil {
		return nil, nil, err
	}
	if err := l.loadRelTypes(store, res); err != nil {
		return nil, nil, err
	}
	if err := l.loadPackages(store, res); err != nil {
		return nil, nil, err
	}
	for _, file := range l.cfg.SuggestionFiles {
		if err := l.loadSuggestions(store, res, file); err != nil {
			return nil, nil, err
		}
	}

	l.logger.Debug("catalog loaded",
		"tables", res.Tables,
		"rel_types", res.RelTypes,
		"packages", res.Packages,
		"suggestions", res.Suggestions)

	return store, res, nil
}

// loadTables reads sys_db_object records. Two passes: the first maps
// sys_id to table name so super_class references, which are sys_ids on
// the wire, resolve to table names in the second.
func (l *Loader) loadTables(store *catalog.Store, res *Result) error {
	records, found, err := l.readEnvelope(l.cfg.TablesFile)
	if err != nil {
		return err
	}
	if !found {
		res.MissingFiles = append(res.MissingFiles, l.cfg.TablesFile)
		return nil
	}

	parsed := make([]tableRecord, 0, len(records))
	idToName := make(map[string]string, len(records))
	for _, raw := range records {
		var rec tableRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Name == "" {
			res.Skipped[l.cfg.TablesFile]++
			continue
		}
		parsed = append(parsed, rec)
		if rec.SysID != "" {
			idToName[rec.SysID] = rec.Name
		}
	}

	for _, rec := range parsed {
		scope := rec.Scope
		if scope == "" {
			scope = "global"
		}
		store.PutTable(catalog.Table{
			Name:         rec.Name,
			Label:        rec.Label,
			SuperClass:   idToName[rec.SuperClass],
			SuperClassID: rec.SuperClass,
			Scope:        scope,
			Package:      rec.Package,
			Extendable:   strBool(rec.IsExtendable),
		})
		res.Tables++
	}
	return nil
}

func (l *Loader) loadRelTypes(store *catalog.Store, res *Result) error {
	records, found, err := l.readEnvelope(l.cfg.RelTypesFile)
	if err != nil {
		return err
	}
	if !found {
		res.MissingFiles = append(res.MissingFiles, l.cfg.RelTypesFile)
		return nil
	}

	for _, raw := range records {
		var rec relTypeRecord
		if err := json.Unmarshal(raw, &rec); err != nil || rec.SysID == "" {
			res.Skipped[l.cfg.RelTypesFile]++
			continue
		}
		scope := rec.Scope
		if scope == "" {
			scope = "global"
		}
		store.PutRelationshipType(catalog.RelationshipType{
			ID:               rec.SysID,
			Name:             rec.Name,
			ParentDescriptor: rec.ParentDescriptor,
			ChildDescriptor:  rec.ChildDescriptor,
			SysName:          rec.SysName,
			Scope:            scope,
		})
		res.RelTypes++
	}
	return nil
}

func (l *Loader) loadPackages(store *catalog.Store, res *Result) error {
	records, found, err := l.readEnvelope(l.cfg.PackagesFile)
	if err != nil {
		return err
	}
	if !found {
		res.MissingFiles = append(res.MissingFiles, l.cfg.PackagesFile)
		return nil
	}

	for _, raw := range records {
		var rec packageRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			res.Skipped[l.cfg.PackagesFile]++
			continue
		}
		if rec.SysID == "" && rec.Source == "" {
			res.Skipped[l.cfg.PackagesFile]++
			continue
		}
		name := rec.Name
		if name == "" {
			name = rec.Source
		}
		active := rec.Active == "" || strBool(rec.Active)
		store.PutPackage(catalog.Package{
			ID:              rec.SysID,
			Source:          rec.Source,
			Name:            name,
			Version:         rec.Version,
			LicenseCategory: defaultStr(rec.LicenseCategory, "none"),
			ClassName:       rec.ClassName,
			Active:          active,
		})
		res.Packages++
	}
	return nil
}

func (l *Loader) loadSuggestions(store *catalog.Store, res *Result, file string) error {
	records, found, err := l.readEnvelope(file)
	if err != nil {
		return err
	}
	if !found {
		res.MissingFiles = append(res.MissingFiles, file)
		return nil
	}

	for _, raw := range records {
		var rec suggestionRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			res.Skipped[file]++
			continue
		}
		// Missing fields are left for the graph builder to count; the
		// record still carries its source file for that bookkeeping.
		store.AddSuggestion(catalog.SuggestedRelationship{
			BaseClass:      rec.BaseClass,
			DependentClass: rec.DependentClass,
			TypeID:         rec.RelType,
			IsParent:       strBool(rec.Parent),
			SourceFile:     file,
		})
		res.Suggestions++
	}
	return nil
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

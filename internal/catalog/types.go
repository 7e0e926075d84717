// Package catalog holds the reference data loaded from a ServiceNow CMDB
// export: table definitions, relationship types, packages, and suggested
// relationships. The catalog is populated once during loading and read-only
// afterward.
package catalog

// Table describes a CMDB table (sys_db_object record). Identity is the
// table name, which is unique across the instance.
type Table struct {
	Name         string
	Label        string
	SuperClass   string // resolved parent table name, empty for root tables
	SuperClassID string // raw sys_id reference before resolution
	Scope        string
	Package      string
	Extendable   bool
}

// RelationshipType describes a CI relationship type (cmdb_rel_type record).
// The parent and child descriptors label the two directions of an edge.
type RelationshipType struct {
	ID               string
	Name             string
	ParentDescriptor string
	ChildDescriptor  string
	SysName          string
	Scope            string
}

// Package describes a sys_package record. Records are reachable by both
// their sys_id and their source string.
type Package struct {
	ID              string
	Source          string
	Name            string
	Version         string
	LicenseCategory string
	ClassName       string
	Active          bool
}

// SuggestedRelationship is one suggestion record linking two tables.
// IsParent decides edge direction: true means BaseClass -> DependentClass.
type SuggestedRelationship struct {
	BaseClass      string
	DependentClass string
	TypeID         string
	IsParent       bool
	SourceFile     string
}

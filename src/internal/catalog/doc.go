// Package catalog holds the property table used to turn path pattern pieces
// into rsyslog property references.
//
// A catalog is an ordered list of records, each mapping a short code (as it
// appears in a path pattern, e.g. "hst") to an rsyslog property name (e.g.
// "hostname") with a human description. Catalogs are loaded once and are
// read-only afterwards; lookups are exact, case-sensitive and return the first
// record registered for a code.
//
// Catalog files may be JSON or YAML (a top-level list of objects with the keys
// code, name and description) or TOML (a list of [[property]] tables). Loaded
// files are validated: every record needs a code and a name, and codes must be
// unique. A built-in table of common properties is available through Default.
//
//	cat, err := catalog.Load("/etc/logsrv-assist/properties.json")
//	if err != nil {
//	    log.Fatalf("Failed to load catalog: %v", err)
//	}
//	name, ok := cat.PropertyName("hst") // "hostname", true
package catalog

package catalog

// PropertyRecord maps a short code used in path patterns to an rsyslog property name.
type PropertyRecord struct {
	Code        string `json:"code" yaml:"code" toml:"code" validate:"required"`
	Name        string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// PropertyDescription is a PropertyRecord without its property name.
type PropertyDescription struct {
	Code        string `json:"code" yaml:"code" toml:"code"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Catalog is an ordered, read-only set of property records.
// It is safe for concurrent use once constructed.
type Catalog struct {
	records []PropertyRecord
	// index holds the position of the first record for each code.
	index map[string]int
}

// New creates a catalog from records, preserving their order.
// When several records share a code, lookups return the first one.
func New(records []PropertyRecord) *Catalog {
	c := &Catalog{
		records: make([]PropertyRecord, len(records)),
		index:   make(map[string]int, len(records)),
	}
	copy(c.records, records)

	for i, record := range c.records {
		if _, exists := c.index[record.Code]; !exists {
			c.index[record.Code] = i
		}
	}

	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns a copy of the records in catalog order.
func (c *Catalog) Records() []PropertyRecord {
	if c == nil {
		return nil
	}
	records := make([]PropertyRecord, len(c.records))
	copy(records, c.records)
	return records
}

// Lookup finds the record for code. Matching is exact and case-sensitive.
func (c *Catalog) Lookup(code string) (PropertyRecord, bool) {
	if c == nil {
		return PropertyRecord{}, false
	}
	i, ok := c.index[code]
	if !ok {
		return PropertyRecord{}, false
	}
	return c.records[i], true
}

// PropertyName returns the property name registered for code.
// A record with an empty name does not resolve.
func (c *Catalog) PropertyName(code string) (string, bool) {
	record, ok := c.Lookup(code)
	if !ok || record.Name == "" {
		return "", false
	}
	return record.Name, true
}

// Describe projects the catalog to code/description pairs in catalog order.
func (c *Catalog) Describe() []PropertyDescription {
	descriptions := make([]PropertyDescription, 0, c.Len())
	if c == nil {
		return descriptions
	}
	for _, record := range c.records {
		descriptions = append(descriptions, PropertyDescription{
			Code:        record.Code,
			Description: record.Description,
		})
	}
	return descriptions
}

package models

// TableSchema is one catalog entry: the DDL text and the ordered column list
// for a single table.
type TableSchema struct {
	Name    string   `json:"name"`
	DDL     string   `json:"ddl"`
	Columns []string `json:"columns"`
}

// Database groups the tables of one mock database. Tables keeps the
// catalog's declaration order.
type Database struct {
	Name   string        `json:"name"`
	Tables []TableSchema `json:"tables"`
}

// DatabaseInfo is the summary shape returned by the database listing.
type DatabaseInfo struct {
	Name       string `json:"name"`
	TableCount int    `json:"table_count"`
}

func (d *Database) Table(name string) (*TableSchema, bool) {
	for i := range d.Tables {
		if d.Tables[i].Name == name {
			return &d.Tables[i], true
		}
	}
	return nil, false
}

func (d *Database) TableNames() []string {
	names := make([]string, 0, len(d.Tables))
	for _, t := range d.Tables {
		names = append(names, t.Name)
	}
	return names
}

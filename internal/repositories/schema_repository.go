package repositories

import (
	"errors"

	"github.com/mroyme/NL2SQL/internal/models"
)

var (
	ErrDatabaseNotFound = errors.New("database not found")
	ErrTableNotFound    = errors.New("table not found")
)

// SchemaRepository serves the static schema catalog. The catalog is built
// once at construction and never mutated, so reads need no locking.
type SchemaRepository struct {
	names     []string
	databases map[string]*models.Database
}

func NewSchemaRepository() *SchemaRepository {
	r := &SchemaRepository{
		databases: make(map[string]*models.Database, len(mockCatalog)),
	}
	for _, db := range mockCatalog {
		r.names = append(r.names, db.Name)
		r.databases[db.Name] = db
	}
	return r
}

func (r *SchemaRepository) ListDatabases() []models.DatabaseInfo {
	infos := make([]models.DatabaseInfo, 0, len(r.names))
	for _, name := range r.names {
		infos = append(infos, models.DatabaseInfo{
			Name:       name,
			TableCount: len(r.databases[name].Tables),
		})
	}
	return infos
}

func (r *SchemaRepository) HasDatabase(name string) bool {
	_, ok := r.databases[name]
	return ok
}

func (r *SchemaRepository) ListTables(database string) ([]models.TableSchema, error) {
	db, ok := r.databases[database]
	if !ok {
		return nil, ErrDatabaseNotFound
	}
	return db.Tables, nil
}

func (r *SchemaRepository) GetTable(database, table string) (*models.TableSchema, error) {
	db, ok := r.databases[database]
	if !ok {
		return nil, ErrDatabaseNotFound
	}
	t, ok := db.Table(table)
	if !ok {
		return nil, ErrTableNotFound
	}
	return t, nil
}

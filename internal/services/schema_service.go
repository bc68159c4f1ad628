package services

import (
	"github.com/mroyme/NL2SQL/internal/models"
	"github.com/mroyme/NL2SQL/internal/repositories"
)

// SchemaService exposes the schema catalog to the API layer.
type SchemaService struct {
	schemaRepo *repositories.SchemaRepository
}

func NewSchemaService(schemaRepo *repositories.SchemaRepository) *SchemaService {
	return &SchemaService{schemaRepo: schemaRepo}
}

func (s *SchemaService) ListDatabases() []models.DatabaseInfo {
	return s.schemaRepo.ListDatabases()
}

func (s *SchemaService) ListTables(database string) ([]models.TableSchema, error) {
	return s.schemaRepo.ListTables(database)
}

func (s *SchemaService) GetTable(database, table string) (*models.TableSchema, error) {
	return s.schemaRepo.GetTable(database, table)
}

package services

import (
	"context"
	"strings"
	"time"

	"github.com/mroyme/NL2SQL/internal/models"
)

// ExecutorRule maps SQL substrings to a canned dataset. All substrings must
// appear in the lowercased SQL for the rule to fire.
//
// The rule table mirrors the generator's but is maintained independently,
// so the two can disagree: SQL generated for one table may land in another
// table's branch here. That mismatch is inherited behavior and is kept
// until the product decides otherwise.
type ExecutorRule struct {
	Substrings []string
	Build      func() *models.ResultSet
}

var executorRules = []ExecutorRule{
	{
		Substrings: []string{"count(*)", "users"},
		Build: func() *models.ResultSet {
			return newResultSet(
				[]string{"total_users"},
				[]map[string]interface{}{
					{"total_users": 1247},
				},
			)
		},
	},
	{
		Substrings: []string{"name, price", "products"},
		Build: func() *models.ResultSet {
			return newResultSet(
				[]string{"name", "price"},
				[]map[string]interface{}{
					{"name": "Premium Laptop", "price": 1299.99},
					{"name": "Gaming Monitor", "price": 849.99},
					{"name": "Wireless Headphones", "price": 299.99},
					{"name": "Smart Watch", "price": 399.99},
					{"name": "Tablet Pro", "price": 899.99},
				},
			)
		},
	},
	{
		Substrings: []string{"sum(total_amount)", "orders"},
		Build: func() *models.ResultSet {
			return newResultSet(
				[]string{"total_revenue"},
				[]map[string]interface{}{
					{"total_revenue": 2845672.50},
				},
			)
		},
	},
	{
		Substrings: []string{"first_name, last_name, salary", "employees"},
		Build: func() *models.ResultSet {
			return newResultSet(
				[]string{"first_name", "last_name", "salary"},
				[]map[string]interface{}{
					{"first_name": "Alice", "last_name": "Johnson", "salary": 85000.00},
					{"first_name": "Bob", "last_name": "Smith", "salary": 92000.00},
					{"first_name": "Carol", "last_name": "Brown", "salary": 78000.00},
					{"first_name": "David", "last_name": "Wilson", "salary": 105000.00},
					{"first_name": "Emma", "last_name": "Davis", "salary": 88000.00},
				},
			)
		},
	},
	{
		Substrings: []string{"users"},
		Build: func() *models.ResultSet {
			return newResultSet(
				[]string{"id", "username", "email", "created_at", "is_active"},
				[]map[string]interface{}{
					{"id": 1, "username": "alice_j", "email": "alice@email.com", "created_at": "2024-01-15", "is_active": true},
					{"id": 2, "username": "bob_smith", "email": "bob@email.com", "created_at": "2024-02-20", "is_active": true},
					{"id": 3, "username": "carol_b", "email": "carol@email.com", "created_at": "2024-03-10", "is_active": false},
					{"id": 4, "username": "david_w", "email": "david@email.com", "created_at": "2024-04-05", "is_active": true},
					{"id": 5, "username": "emma_d", "email": "emma@email.com", "created_at": "2024-05-12", "is_active": true},
				},
			)
		},
	},
}

func sampleResultSet() *models.ResultSet {
	return newResultSet(
		[]string{"id", "sample_column", "value"},
		[]map[string]interface{}{
			{"id": 1, "sample_column": "Data 1", "value": 100},
			{"id": 2, "sample_column": "Data 2", "value": 200},
			{"id": 3, "sample_column": "Data 3", "value": 300},
			{"id": 4, "sample_column": "Data 4", "value": 400},
			{"id": 5, "sample_column": "Data 5", "value": 500},
		},
	)
}

func newResultSet(columns []string, rows []map[string]interface{}) *models.ResultSet {
	return &models.ResultSet{
		Columns:  columns,
		Rows:     rows,
		RowCount: len(rows),
	}
}

// ExecutorService is the mock execution step. A real implementation would
// run the SQL against a live connection; this one returns canned datasets
// chosen by substring match and simulates query latency.
type ExecutorService struct {
	delay time.Duration
}

func NewExecutorService(delay time.Duration) *ExecutorService {
	return &ExecutorService{delay: delay}
}

// Execute selects a dataset for the SQL string. Branch selection is a pure
// function of the lowercased SQL: identical statements always yield the
// same dataset. Unmatched SQL gets a generic sample.
func (s *ExecutorService) Execute(ctx context.Context, sql string, database string) (*models.ResultSet, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return nil, err
	}

	lowered := strings.ToLower(sql)
	for _, rule := range executorRules {
		if containsAll(lowered, rule.Substrings) {
			return rule.Build(), nil
		}
	}
	return sampleResultSet(), nil
}

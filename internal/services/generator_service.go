package services

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// GeneratorRule maps a set of question keywords to a literal SQL statement.
// All keywords must be present (lowercased match) for the rule to fire.
type GeneratorRule struct {
	Keywords []string
	SQL      string
}

// generatorRules are scanned in order, first match wins. The rule table is
// data, not control flow, so it can be extended without touching Generate.
var generatorRules = []GeneratorRule{
	{
		Keywords: []string{"users", "count"},
		SQL:      "SELECT COUNT(*) as total_users FROM users WHERE is_active = TRUE;",
	},
	{
		Keywords: []string{"products", "price"},
		SQL:      "SELECT name, price FROM products WHERE price > 100 ORDER BY price DESC;",
	},
	{
		Keywords: []string{"orders", "total"},
		SQL:      "SELECT SUM(total_amount) as total_revenue FROM orders WHERE status = 'completed';",
	},
	{
		Keywords: []string{"employees", "salary"},
		SQL:      "SELECT first_name, last_name, salary FROM employees WHERE salary > 50000 ORDER BY salary DESC;",
	},
}

// GeneratorService is the mock text-to-SQL step. A real implementation
// would call a model inference API here; this one matches keywords against
// a fixed rule table and simulates the call latency.
type GeneratorService struct {
	delay time.Duration
}

func NewGeneratorService(delay time.Duration) *GeneratorService {
	return &GeneratorService{delay: delay}
}

// Generate returns a SQL string for the question. It cannot fail except by
// context cancellation; unmatched questions fall back to a preview query
// over the first selected table.
func (s *GeneratorService) Generate(ctx context.Context, question string, tables []string, database string) (string, error) {
	if err := simulateLatency(ctx, s.delay); err != nil {
		return "", err
	}

	lowered := strings.ToLower(question)
	for _, rule := range generatorRules {
		if containsAll(lowered, rule.Keywords) {
			return rule.SQL, nil
		}
	}

	table := "table_name"
	if len(tables) > 0 {
		table = tables[0]
	}
	return fmt.Sprintf("SELECT * FROM %s LIMIT 10;", table), nil
}

func containsAll(text string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

// simulateLatency stands in for a network round trip.
func simulateLatency(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

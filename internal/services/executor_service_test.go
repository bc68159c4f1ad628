package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecute_UserCountBranch(t *testing.T) {
	e := NewExecutorService(0)

	rs, err := e.Execute(context.Background(), "SELECT COUNT(*) as total_users FROM users WHERE is_active = TRUE;", "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, []string{"total_users"}, rs.Columns)
	require.Equal(t, 1, rs.RowCount)
	require.Equal(t, 1247, rs.Rows[0]["total_users"])
}

func TestExecute_ProductPriceBranch(t *testing.T) {
	e := NewExecutorService(0)

	rs, err := e.Execute(context.Background(), "SELECT name, price FROM products WHERE price > 100 ORDER BY price DESC;", "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, []string{"name", "price"}, rs.Columns)
	require.Equal(t, 5, rs.RowCount)
	require.Equal(t, "Premium Laptop", rs.Rows[0]["name"])
	require.Equal(t, 1299.99, rs.Rows[0]["price"])
}

func TestExecute_RevenueBranch(t *testing.T) {
	e := NewExecutorService(0)

	rs, err := e.Execute(context.Background(), "SELECT SUM(total_amount) as total_revenue FROM orders WHERE status = 'completed';", "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, 2845672.50, rs.Rows[0]["total_revenue"])
}

func TestExecute_SalaryBranch(t *testing.T) {
	e := NewExecutorService(0)

	rs, err := e.Execute(context.Background(), "SELECT first_name, last_name, salary FROM employees WHERE salary > 50000 ORDER BY salary DESC;", "hr_system")
	require.NoError(t, err)
	require.Equal(t, 5, rs.RowCount)
	require.Equal(t, "Alice", rs.Rows[0]["first_name"])
	require.Equal(t, 105000.00, rs.Rows[3]["salary"])
}

func TestExecute_GenericUsersBranch(t *testing.T) {
	e := NewExecutorService(0)

	// Any SQL mentioning users, not just generated ones, lands here.
	rs, err := e.Execute(context.Background(), "SELECT * FROM users LIMIT 10;", "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, []string{"id", "username", "email", "created_at", "is_active"}, rs.Columns)
	require.Equal(t, 5, rs.RowCount)
	require.Equal(t, "alice_j", rs.Rows[0]["username"])
}

func TestExecute_SampleFallback(t *testing.T) {
	e := NewExecutorService(0)

	rs, err := e.Execute(context.Background(), "SELECT * FROM categories LIMIT 10;", "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, []string{"id", "sample_column", "value"}, rs.Columns)
	require.Equal(t, 5, rs.RowCount)
	require.Equal(t, "Data 1", rs.Rows[0]["sample_column"])
}

func TestExecute_RuleTablesCanDisagreeWithGenerator(t *testing.T) {
	e := NewExecutorService(0)

	// The generator's fallback for the products table produces SQL no
	// executor rule matches, so it gets the generic sample instead of
	// anything product shaped. Inherited inconsistency, kept on purpose.
	rs, err := e.Execute(context.Background(), "SELECT * FROM products LIMIT 10;", "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, []string{"id", "sample_column", "value"}, rs.Columns)
}

func TestExecute_Deterministic(t *testing.T) {
	e := NewExecutorService(0)
	sql := "SELECT name, price FROM products WHERE price > 100 ORDER BY price DESC;"

	first, err := e.Execute(context.Background(), sql, "ecommerce_db")
	require.NoError(t, err)

	// Mutating a returned dataset must not leak into later executions.
	first.Rows[0]["name"] = "mutated"

	second, err := e.Execute(context.Background(), sql, "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, "Premium Laptop", second.Rows[0]["name"])

	third, err := e.Execute(context.Background(), sql, "ecommerce_db")
	require.NoError(t, err)
	require.Equal(t, second, third)
}

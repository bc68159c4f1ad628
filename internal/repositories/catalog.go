package repositories

import "github.com/mroyme/NL2SQL/internal/models"

// mockCatalog is the demo schema catalog. There is no database behind it;
// these entries stand in for real connections.
var mockCatalog = []*models.Database{
	{
		Name: "ecommerce_db",
		Tables: []models.TableSchema{
			{
				Name: "users",
				DDL: `CREATE TABLE users (
    id INTEGER PRIMARY KEY,
    username VARCHAR(50) UNIQUE NOT NULL,
    email VARCHAR(100) UNIQUE NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login TIMESTAMP,
    is_active BOOLEAN DEFAULT TRUE
);`,
				Columns: []string{"id", "username", "email", "created_at", "last_login", "is_active"},
			},
			{
				Name: "products",
				DDL: `CREATE TABLE products (
    id INTEGER PRIMARY KEY,
    name VARCHAR(200) NOT NULL,
    description TEXT,
    price DECIMAL(10,2) NOT NULL,
    category_id INTEGER,
    stock_quantity INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (category_id) REFERENCES categories(id)
);`,
				Columns: []string{"id", "name", "description", "price", "category_id", "stock_quantity", "created_at"},
			},
			{
				Name: "orders",
				DDL: `CREATE TABLE orders (
    id INTEGER PRIMARY KEY,
    user_id INTEGER NOT NULL,
    total_amount DECIMAL(10,2) NOT NULL,
    status VARCHAR(20) DEFAULT 'pending',
    order_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(id)
);`,
				Columns: []string{"id", "user_id", "total_amount", "status", "order_date"},
			},
			{
				Name: "categories",
				DDL: `CREATE TABLE categories (
    id INTEGER PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    description TEXT,
    parent_id INTEGER,
    FOREIGN KEY (parent_id) REFERENCES categories(id)
);`,
				Columns: []string{"id", "name", "description", "parent_id"},
			},
		},
	},
	{
		Name: "hr_system",
		Tables: []models.TableSchema{
			{
				Name: "employees",
				DDL: `CREATE TABLE employees (
    id INTEGER PRIMARY KEY,
    first_name VARCHAR(50) NOT NULL,
    last_name VARCHAR(50) NOT NULL,
    email VARCHAR(100) UNIQUE NOT NULL,
    department_id INTEGER,
    salary DECIMAL(10,2),
    hire_date DATE NOT NULL,
    FOREIGN KEY (department_id) REFERENCES departments(id)
);`,
				Columns: []string{"id", "first_name", "last_name", "email", "department_id", "salary", "hire_date"},
			},
			{
				Name: "departments",
				DDL: `CREATE TABLE departments (
    id INTEGER PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    budget DECIMAL(12,2),
    manager_id INTEGER,
    FOREIGN KEY (manager_id) REFERENCES employees(id)
);`,
				Columns: []string{"id", "name", "budget", "manager_id"},
			},
		},
	},
}

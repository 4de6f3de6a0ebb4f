package store

import (
	"fmt"
	"strings"

	"github.com/sharadgeorge/oncall-converter/internal/model"
)

// BatchInsertEmployees inserts directory entries in one transaction.
func (s *Store) BatchInsertEmployees(entries []model.EmployeeDirectoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO employees (username, initials, full_name, roles, department)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(e.Username, e.Initials, e.FullName, strings.Join(e.Roles, ","), e.Department)
		if err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListEmployees returns directory entries in insertion order, optionally
// filtered by department (case-insensitive). Insertion order matters:
// the resolver's loose name matching walks entries in this order.
func (s *Store) ListEmployees(department string) ([]model.EmployeeDirectoryEntry, error) {
	query := "SELECT username, initials, full_name, roles, department FROM employees"
	var args []interface{}
	if department != "" {
		query += " WHERE department = ? COLLATE NOCASE"
		args = append(args, department)
	}
	query += " ORDER BY rowid"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var entries []model.EmployeeDirectoryEntry
	for rows.Next() {
		var e model.EmployeeDirectoryEntry
		var roles string
		if err := rows.Scan(&e.Username, &e.Initials, &e.FullName, &roles, &e.Department); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if roles != "" {
			e.Roles = strings.Split(roles, ",")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return entries, nil
}

// CountEmployees returns the directory size.
func (s *Store) CountEmployees() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM employees").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

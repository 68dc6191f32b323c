package database

import (
	"database/sql"
	"fmt"
)

func (s *MySql) prepareStmt(name, query string) (*sql.Stmt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stmt, ok := s.statements[name]; ok {
		return stmt, nil
	}

	stmt, err := s.db.Prepare(query)
	if err != nil {
		return nil, fmt.Errorf("prepare statement [%s]: %w", name, err)
	}

	s.statements[name] = stmt
	return stmt, nil
}

func (s *MySql) closeStmt() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, stmt := range s.statements {
		_ = stmt.Close()
		delete(s.statements, name)
	}
}

func (s *MySql) stmtSelectSession() (*sql.Stmt, error) {
	query := fmt.Sprintf(
		`SELECT c.party_id, c.name, c.manager, c.b2b
                   FROM %ssession s
                   JOIN %scustomer c ON c.customer_id = s.customer_id
                   WHERE s.token = ? AND s.expires > NOW()`,
		s.prefix, s.prefix,
	)
	return s.prepareStmt("selectSession", query)
}

func (s *MySql) stmtTouchSession() (*sql.Stmt, error) {
	query := fmt.Sprintf(
		`UPDATE %ssession SET
                   last_seen = ?
                   WHERE token = ?`,
		s.prefix,
	)
	return s.prepareStmt("touchSession", query)
}

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"saleportal/entity"
	"saleportal/internal/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySql is the storefront session store. The web shop writes session rows
// at login; this side only resolves tokens to caller identity.
type MySql struct {
	db         *sql.DB
	prefix     string
	statements map[string]*sql.Stmt
	mu         sync.Mutex
	log        *slog.Logger
}

func NewSQLClient(conf *config.Config, log *slog.Logger) (*MySql, error) {
	if !conf.SQL.Enabled {
		return nil, fmt.Errorf("SQL client is disabled in configuration")
	}
	connectionURI := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		conf.SQL.UserName, conf.SQL.Password, conf.SQL.HostName, conf.SQL.Port, conf.SQL.Database)
	db, err := sql.Open("mysql", connectionURI)
	if err != nil {
		return nil, fmt.Errorf("sql connect: %w", err)
	}

	// try ping three times with 30 seconds interval; wait for database to start
	for i := 0; i < 3; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		if i == 2 {
			return nil, fmt.Errorf("ping database: %w", err)
		}
		time.Sleep(30 * time.Second)
	}

	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &MySql{
		db:         db,
		prefix:     conf.SQL.Prefix,
		statements: make(map[string]*sql.Stmt),
		log:        log,
	}

	return sdb, nil
}

func (s *MySql) Close() {
	s.closeStmt()
	_ = s.db.Close()
}

// Stats returns database info only if there are connections inUse
func (s *MySql) Stats() string {
	stats := s.db.Stats()
	if stats.InUse > 0 {
		return fmt.Sprintf("open: %d, inuse: %d, idle: %d, stmts: %d",
			stats.OpenConnections,
			stats.InUse,
			stats.Idle,
			len(s.statements),
		)
	}
	return "idle"
}

// SessionByToken resolves an unexpired storefront session to the caller
// identity the visibility scope is derived from.
func (s *MySql) SessionByToken(token string) (*entity.UserAuth, error) {
	stmt, err := s.stmtSelectSession()
	if err != nil {
		return nil, err
	}

	user := entity.UserAuth{Token: token}
	err = stmt.QueryRow(token).Scan(&user.PartyID, &user.Name, &user.Manager, &user.B2B)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("select session: %w", err)
	}

	if err := s.touchSession(token); err != nil {
		s.log.Warn("failed to touch session", slog.String("error", err.Error()))
	}

	return &user, nil
}

// touchSession bumps last_seen so idle session expiry runs off real use.
func (s *MySql) touchSession(token string) error {
	stmt, err := s.stmtTouchSession()
	if err != nil {
		return err
	}
	_, err = stmt.Exec(time.Now(), token)
	return err
}

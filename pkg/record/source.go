package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
)

// Connection is a named connection profile.
type Connection struct {
	Name        string
	Driver      string // database/sql driver name, e.g. "sqlite" or "pgx"
	DSN         string
	Placeholder PlaceholderStyle
}

type handle struct {
	conn Connection
	db   *sql.DB
}

// Source owns the connection profiles and registered entity schemas used by
// entities and finders. Pools are opened lazily on first use; each Save,
// Delete and finder call checks out its own connection from the pool.
type Source struct {
	mu      sync.RWMutex
	handles map[string]*handle
	schemas map[reflect.Type]*schema
	logger  *slog.Logger
}

// NewSource creates a Source with the given profiles.
// If logger is nil, a discard logger is used. Invalid profiles are logged and
// skipped; use AddConnection to get the error instead.
func NewSource(logger *slog.Logger, conns ...Connection) *Source {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Source{
		handles: make(map[string]*handle),
		schemas: make(map[reflect.Type]*schema),
		logger:  logger,
	}
	for _, c := range conns {
		if err := s.AddConnection(c); err != nil {
			logger.Warn("skipping connection profile", slog.String("name", c.Name), slog.Any("error", err))
		}
	}
	return s
}

// AddConnection registers a profile. The pool is opened on first use.
func (s *Source) AddConnection(c Connection) error {
	if c.Name == "" {
		return fmt.Errorf("connection name is required")
	}
	if c.Driver == "" {
		return fmt.Errorf("connection %q: driver is required", c.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.handles[c.Name]; ok {
		return fmt.Errorf("connection %q already registered", c.Name)
	}
	s.handles[c.Name] = &handle{conn: c}
	return nil
}

// Attach registers an already opened pool under name, replacing any profile
// with the same name. Close closes attached pools too.
func (s *Source) Attach(name string, db *sql.DB, style PlaceholderStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handles[name] = &handle{
		conn: Connection{Name: name, Placeholder: style},
		db:   db,
	}
}

// DB returns the pool for the named profile, opening it if necessary.
func (s *Source) DB(name string) (*sql.DB, error) {
	s.mu.RLock()
	h, ok := s.handles[name]
	if ok && h.db != nil {
		s.mu.RUnlock()
		return h.db, nil
	}
	s.mu.RUnlock()
	if !ok {
		return nil, &ConfigError{Type: name, Attribute: "connection", Detail: "no such connection profile"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Attach may have replaced the handle while the lock was released.
	h, ok = s.handles[name]
	if !ok {
		return nil, &ConfigError{Type: name, Attribute: "connection", Detail: "no such connection profile"}
	}
	if h.db != nil {
		return h.db, nil
	}
	s.logger.Debug("opening connection", slog.String("name", name), slog.String("driver", h.conn.Driver))
	db, err := sql.Open(h.conn.Driver, h.conn.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection %q: %w", name, err)
	}
	h.db = db
	return db, nil
}

// Ping verifies that the named profile is reachable.
func (s *Source) Ping(ctx context.Context, name string) error {
	db, err := s.DB(name)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping %q: %w", name, err)
	}
	return nil
}

// Connections returns the registered profile names (sorted).
func (s *Source) Connections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.handles))
	for name := range s.handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every opened pool.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var errs []error
	for name, h := range s.handles {
		if h.db == nil {
			continue
		}
		s.logger.Debug("closing connection", slog.String("name", name))
		if err := h.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close %q: %w", name, err))
		}
		h.db = nil
	}
	return errors.Join(errs...)
}

// Logger returns the logger entities and finders log to.
func (s *Source) Logger() *slog.Logger {
	return s.logger
}

func (s *Source) placeholder(name string) (PlaceholderStyle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.handles[name]
	if !ok {
		return PlaceholderNamed, &ConfigError{Type: name, Attribute: "connection", Detail: "no such connection profile"}
	}
	return h.conn.Placeholder, nil
}

func (s *Source) setSchema(t reflect.Type, sc *schema) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[t] = sc
}

func (s *Source) schemaFor(t reflect.Type) (*schema, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.schemas[t]
	return sc, ok
}

func unregistered(t reflect.Type) error {
	return &ConfigError{Type: t.String(), Attribute: "schema", Detail: "entity type is not registered"}
}

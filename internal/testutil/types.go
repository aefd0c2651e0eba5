package testutil

import (
	"errors"

	"github.com/google/uuid"
)

// Common test errors
var (
	ErrTest        = errors.New("test error")
	ErrDisposal    = errors.New("disposal error")
	ErrIntentional = errors.New("intentional error")
)

// Position is a test component
type Position struct {
	X, Y float32
}

// Velocity is a test component
type Velocity struct {
	DX, DY float32
}

// Health is a test component
type Health struct {
	Current, Max int
}

// InjectMe is a plain business object registered by tests
type InjectMe struct {
	ID string
}

// NewInjectMe creates an InjectMe with a unique id
func NewInjectMe() *InjectMe {
	return &InjectMe{ID: uuid.NewString()}
}

// Clock is a test service registered by type
type Clock struct {
	Ticks int
}

// Database is a test dependency for constructor providers
type Database struct {
	DSN string
}

// NewTestDatabase creates a Database
func NewTestDatabase() *Database {
	return &Database{DSN: "memory://" + uuid.NewString()}
}

// Repository depends on Database
type Repository struct {
	DB *Database
}

// NewRepository creates a Repository over db
func NewRepository(db *Database) *Repository {
	return &Repository{DB: db}
}

// Store is implemented by Repository
type Store interface {
	Find(id string) (string, bool)
}

// Find always misses
func (r *Repository) Find(string) (string, bool) {
	return "", false
}

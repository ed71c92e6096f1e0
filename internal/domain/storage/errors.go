// Package storage holds the error taxonomy shared by every repository.
//
// A repository failure is always a *Error whose Kind is either ErrNotFound or
// ErrDataAccess. The original driver fault stays reachable through errors.Is
// and errors.As.
package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - a keyed lookup or a keyed mutation matched zero rows.
	ErrNotFound = errors.New("not found")
	// ErrDataAccess - any other fault surfaced by the database client.
	ErrDataAccess = errors.New("data access failure")
)

type Error struct {
	Entity string
	Op     string
	Key    string
	Kind   error
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s (%s): %v", e.Entity, e.Op, e.Key, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NotFound(entity, op, key string, cause error) error {
	return &Error{Entity: entity, Op: op, Key: key, Kind: ErrNotFound, Err: cause}
}

func DataAccess(entity, op, key string, cause error) error {
	return &Error{Entity: entity, Op: op, Key: key, Kind: ErrDataAccess, Err: cause}
}

func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsDataAccess(err error) bool { return errors.Is(err, ErrDataAccess) }

// Key formats the identifying attribute of an operation, e.g. "id = 42".
func Key(name string, value any) string {
	return fmt.Sprintf("%s = %v", name, value)
}

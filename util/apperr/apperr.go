// Package apperr holds the error codes shared by services and controllers.
package apperr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

type ErrCode string

const (
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrInvalidReference ErrCode = "INVALID_REFERENCE"
	ErrConflict         ErrCode = "CONFLICT"
	ErrValidation       ErrCode = "VALIDATION"
	ErrUnauthorized     ErrCode = "UNAUTHORIZED"
	ErrForbidden        ErrCode = "FORBIDDEN"
)

type codedError struct {
	code  ErrCode
	msg   string
	cause error
}

func (e *codedError) Error() string {
	if e.msg == "" {
		return string(e.code)
	}
	return e.msg
}

func (e *codedError) Code() ErrCode { return e.code }
func (e *codedError) Unwrap() error { return e.cause }

// New returns an error carrying code c.
func New(c ErrCode, msg string) error { return &codedError{code: c, msg: msg} }

// Newf is New with formatting.
func Newf(c ErrCode, format string, args ...any) error {
	return &codedError{code: c, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches code c to cause.
func Wrap(c ErrCode, msg string, cause error) error {
	return &codedError{code: c, msg: msg, cause: cause}
}

// Code extracts the error code, or "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Is reports whether err carries code c.
func Is(err error, c ErrCode) bool { return err != nil && Code(err) == c }

// FromStore translates driver errors into coded errors. Foreign key
// violations get fkCode: InvalidReference on writes that point at a missing
// row, Conflict on deletes of a row that is still referenced. Errors the
// store did not classify are returned unchanged.
func FromStore(err error, fkCode ErrCode) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return Wrap(ErrNotFound, "not found", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return Wrap(ErrConflict, uniqueMessage(pgErr.ConstraintName), err)
		case pgerrcode.ForeignKeyViolation:
			return Wrap(fkCode, "referenced record does not exist or is still in use", err)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return Wrap(ErrValidation, "value rejected by store", err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && liteErr.Code == sqlite3.ErrConstraint {
		switch liteConstraint(liteErr) {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return Wrap(ErrConflict, uniqueMessage(liteErr.Error()), err)
		case sqlite3.ErrConstraintForeignKey:
			return Wrap(fkCode, "referenced record does not exist or is still in use", err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			return Wrap(ErrValidation, "value rejected by store", err)
		}
	}
	return err
}

// liteConstraint returns the extended constraint code of e. Some violations,
// RESTRICT foreign keys among them, arrive with only the primary code set, so
// the message decides.
func liteConstraint(e sqlite3.Error) sqlite3.ErrNoExtended {
	msg := e.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return sqlite3.ErrConstraintForeignKey
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return sqlite3.ErrConstraintUnique
	case strings.Contains(msg, "CHECK constraint failed"):
		return sqlite3.ErrConstraintCheck
	case strings.Contains(msg, "NOT NULL constraint failed"):
		return sqlite3.ErrConstraintNotNull
	}
	return e.ExtendedCode
}

func uniqueMessage(constraint string) string {
	cn := strings.ToLower(constraint)
	switch {
	case strings.Contains(cn, "isbn"):
		return "isbn already exists"
	case strings.Contains(cn, "email"):
		return "email already registered"
	case strings.Contains(cn, "username"):
		return "username already taken"
	}
	return "record already exists"
}

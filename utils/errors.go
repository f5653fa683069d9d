package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// APIError is the typed error the services raise; controllers translate it
// into the uniform error body.
type APIError struct {
	Status    int
	ErrorText string
	Message   string
}

func (e *APIError) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *APIError {
	return &APIError{
		Status:    http.StatusNotFound,
		ErrorText: "Not Found",
		Message:   fmt.Sprintf(format, args...),
	}
}

func BadRequest(format string, args ...any) *APIError {
	return &APIError{
		Status:    http.StatusBadRequest,
		ErrorText: "Bad Request",
		Message:   fmt.Sprintf(format, args...),
	}
}

func Conflict(format string, args ...any) *APIError {
	return &APIError{
		Status:    http.StatusConflict,
		ErrorText: "Conflict",
		Message:   fmt.Sprintf(format, args...),
	}
}

// IsDuplicateEntry reports whether err is a duplicate-key violation. MySQL
// raises error 1062; the message check also covers the sqlite DB used in
// tests.
func IsDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

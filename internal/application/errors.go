package application

import (
	"errors"
	"fmt"
)

// ObjectNotFoundError is returned when a lookup by identifier finds no record.
type ObjectNotFoundError struct {
	Object string
	ID     string
}

func NewObjectNotFoundError(object, id string) *ObjectNotFoundError {
	return &ObjectNotFoundError{Object: object, ID: id}
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Object, e.ID)
}

// IsObjectNotFound reports whether err, or any error it wraps, is an *ObjectNotFoundError.
func IsObjectNotFound(err error) bool {
	var nf *ObjectNotFoundError
	return errors.As(err, &nf)
}

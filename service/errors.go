package service

import "fmt"

type ValidationErr struct {
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

func NewValidationError(msg string) *ValidationErr {
	return &ValidationErr{message: msg}
}

type NotFoundErr struct {
	Id string
}

func (e *NotFoundErr) Error() string {
	return fmt.Sprintf("submission %s not found", e.Id)
}

func NewNotFoundError(id string) *NotFoundErr {
	return &NotFoundErr{Id: id}
}

// PersistenceErr reports a failed write. The store's state is unchanged.
type PersistenceErr struct {
	cause error
}

func (e *PersistenceErr) Error() string {
	return "saving submissions: " + e.cause.Error()
}

func (e *PersistenceErr) Unwrap() error {
	return e.cause
}

func NewPersistenceError(cause error) *PersistenceErr {
	return &PersistenceErr{cause: cause}
}

package service

import "errors"

// Классы ошибок, по ним API выбирает HTTP статус
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// Error ошибка с текстом для клиента
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

var (
	ErrWorkerNotFound = &Error{Kind: ErrNotFound, Detail: "Worker not found"}
	ErrWorkerIDExists = &Error{Kind: ErrConflict, Detail: "Worker ID already exists"}
)

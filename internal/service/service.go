// Package service contains the business logic.
//
// It sits between the handler and repository layers: it generates ids,
// merges partial updates into stored rows, and classifies storage errors
// into not-found, conflict and internal failures.
package service

import (
	"fmt"

	"github.com/deppfellow/catalog-api/internal/errs"
)

func notFound(entity string, id any) error {
	return errs.NewNotFoundError(fmt.Sprintf("%s with ID: %v not found", entity, id), nil)
}

// storageFailure reports an unexpected storage or mapping error as a 500
// that keeps the diagnostic message.
func storageFailure(err error) error {
	return errs.NewInternalServerError().WithMessage(err.Error())
}

package service

import (
	"context"

	"github.com/BruksfildServices01/estate-agency/internal/apperr"
)

// ExistenceChecker is the narrow capability a service needs from a
// collaborator to confirm a referenced id resolves to a live row. It is
// deliberately smaller than any concrete service so the meeting,
// agreement, real-estate and client services stay free of type cycles.
type ExistenceChecker interface {
	ExistsByID(ctx context.Context, id uint) (bool, error)
}

// assertExists guards a dependent write: it runs immediately before the
// write it protects and fails with a not-found error naming the kind.
func assertExists(ctx context.Context, checker ExistenceChecker, kind string, id uint) error {
	ok, err := checker.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundByID(kind, id)
	}
	return nil
}

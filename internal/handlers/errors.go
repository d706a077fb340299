// Package handlers holds helpers shared by the versioned HTTP handlers.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Sword-of-GraySkull/FinanceFlow/internal/ledger"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/operator"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/service"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/statement"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/account"
	"github.com/Sword-of-GraySkull/FinanceFlow/internal/storage/transaction"
)

const (
	pgUniqueViolation = "23505"

	// statusClientClosedRequest is the nginx convention for a client that
	// went away before the response was written.
	statusClientClosedRequest = 499
)

// Error converts a service error into a huma error with a matching status.
// msg is used for unexpected failures.
func Error(msg string, err error) error {
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return err
	}

	var formatErr *statement.FormatError
	var headerErr *statement.HeaderError
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &formatErr):
		return huma.NewError(http.StatusUnsupportedMediaType, formatErr.Error(), err)
	case errors.As(err, &headerErr):
		return huma.NewError(http.StatusUnprocessableEntity, headerErr.Error(), err)
	case errors.Is(err, statement.ErrTooLarge):
		return huma.NewError(http.StatusRequestEntityTooLarge, "statement is too large", err)
	case ledger.IsValidation(err),
		errors.Is(err, service.ErrAccountNameRequired),
		errors.Is(err, service.ErrAccountTypeRequired),
		errors.Is(err, service.ErrEmptyUpdate):
		return huma.NewError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, account.ErrNotFound), errors.Is(err, transaction.ErrNotFound):
		return huma.NewError(http.StatusNotFound, err.Error(), err)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return huma.NewError(http.StatusConflict, "already exists", err)
	case errors.Is(err, operator.ErrStopped):
		return huma.NewError(http.StatusServiceUnavailable, "server is shutting down", err)
	case errors.Is(err, context.Canceled):
		return huma.NewError(statusClientClosedRequest, "request canceled, the change may still have been applied", err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, "request timed out, the change may still have been applied", err)
	}
	return huma.NewError(http.StatusInternalServerError, msg, err)
}

package handlers

import (
	"errors"
	"net/http"

	"sgf_demandas/internal/domain/billing"
	"sgf_demandas/internal/usecase"
	"sgf_demandas/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// mapDomainError translates use-case sentinel errors into the HTTP error
// taxonomy: VALIDATION_ERROR, NOT_FOUND, FORBIDDEN, PARSE_ERROR.
func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDemandID),
		errors.Is(err, usecase.ErrInvalidDemandCompany),
		errors.Is(err, usecase.ErrInvalidRequestDate),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrCompletionDateRequired),
		errors.Is(err, usecase.ErrTransitionNotAllowed),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidCatalogName),
		errors.Is(err, usecase.ErrInvalidCatalogValue),
		errors.Is(err, usecase.ErrInvalidCompanyName),
		errors.Is(err, usecase.ErrInvalidUsername),
		errors.Is(err, usecase.ErrInvalidPassword),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrDemandNotCompleted),
		errors.Is(err, usecase.ErrNothingToInvoice),
		errors.Is(err, usecase.ErrInvalidInvoicePayload),
		errors.Is(err, billing.ErrInvalidCompletionDate):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)

	case errors.Is(err, usecase.ErrDemandNotFound),
		errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)

	case errors.Is(err, usecase.ErrPermissionDenied):
		return pkg.NewDomainError("FORBIDDEN", "Operation restricted to administrators", err, http.StatusForbidden)

	case errors.Is(err, usecase.ErrCompanyAlreadyExists),
		errors.Is(err, usecase.ErrUserAlreadyExists):
		return pkg.NewDomainError("ALREADY_EXISTS", err.Error(), err, http.StatusConflict)

	case errors.Is(err, usecase.ErrMalformedBackup):
		return pkg.NewDomainError("PARSE_ERROR", err.Error(), err, http.StatusUnprocessableEntity)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password", err, http.StatusUnauthorized)

	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway not configured", err, http.StatusServiceUnavailable)

	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

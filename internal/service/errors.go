package service

import "errors"

// Common service errors
var (
	// ErrMissingCompanyID is returned when a report is requested without a tenant scope
	ErrMissingCompanyID = errors.New("companyId is required")

	// ErrInvalidCompanyID is returned when the tenant scope is not a valid UUID
	ErrInvalidCompanyID = errors.New("companyId must be a valid UUID")

	// ErrInvalidDate is returned when a date filter is not an ISO calendar date
	ErrInvalidDate = errors.New("dates must use the YYYY-MM-DD format")

	// ErrInvalidDateRange is returned when the start date is after the end date
	ErrInvalidDateRange = errors.New("startDate must not be after endDate")

	// ErrInvalidConfiguration is returned when the configuration filter names an unknown kind
	ErrInvalidConfiguration = errors.New("unknown configuration kind")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// IsClientError reports whether err should surface as a 400 rather than a
// generic 500.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingCompanyID) ||
		errors.Is(err, ErrInvalidCompanyID) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidConfiguration) ||
		errors.Is(err, ErrInvalidInput)
}

package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeToCompany narrows a query to a single tenant's records. The tenant
// scope arrives as an explicit parameter on every read; a report for one
// company must never observe another company's rows.
func ScopeToCompany(query *gorm.DB, companyID uuid.UUID) *gorm.DB {
	return query.Where("company_id = ?", companyID)
}

package mapping

import (
	"github.com/d0ggzi/currency-parser/internal/core/domain"
	"github.com/d0ggzi/currency-parser/internal/models"
)

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

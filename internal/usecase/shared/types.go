package shared

import (
	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type UserSnapshot struct {
	ID               uuid.UUID
	Email            string
	Name             string
	Role             string
	CommissionRateBP int32
	IsActive         bool
}

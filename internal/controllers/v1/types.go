package v1

import (
	tb_uuid "github.com/tripbudget/backend/internal/uuid"
)

type URIID struct {
	ID tb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Links of a resource that belongs to a trip.
type TripResourceLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/1f6a0b59-3b1b-4cf2-9d3e-5a2b3c9d7e01"` // The resource itself
	Trip string `json:"trip" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"`    // The trip the resource belongs to
}

package engine

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
	logger "github.com/atlas-hrms/atlas/api/logging"
)

// OwnershipStore exposes the per-entity owner lookups the ownership resolver
// needs. Each method returns the user id recorded as owner/subject of the
// entity.
type OwnershipStore interface {
	LeaveOwner(ctx context.Context, id uint) (uint, error)
	DocumentUploader(ctx context.Context, id uint) (uint, error)
	AttendanceSubject(ctx context.Context, id uint) (uint, error)
	PayslipEmployee(ctx context.Context, id uint) (uint, error)
	RequisitionRequester(ctx context.Context, id uint) (uint, error)
}

// OwnershipResolver decides whether a caller owns the entity a route
// parameter points at. Dispatch is driven by the resource type declared on
// the route's AccessRule, never by the path text. Unknown resource types and
// lookup errors both resolve to false.
type OwnershipResolver struct {
	store OwnershipStore
}

func NewOwnershipResolver(store OwnershipStore) *OwnershipResolver {
	return &OwnershipResolver{store: store}
}

// Owns reports whether identity is the owner/subject of the referenced
// entity. resourceID is the raw route parameter; a non-numeric value fails
// closed.
func (o *OwnershipResolver) Owns(ctx context.Context, identity authz_model.Identity, resource authz_model.Resource, resourceID string) bool {
	id64, err := strconv.ParseUint(resourceID, 10, 64)
	if err != nil {
		return false
	}
	id := uint(id64)

	if resource == authz_model.ResourceUser {
		return id == identity.UserID
	}

	var owner uint
	switch resource {
	case authz_model.ResourceLeave:
		owner, err = o.store.LeaveOwner(ctx, id)
	case authz_model.ResourceDocument:
		owner, err = o.store.DocumentUploader(ctx, id)
	case authz_model.ResourceAttendance:
		owner, err = o.store.AttendanceSubject(ctx, id)
	case authz_model.ResourcePayslip:
		owner, err = o.store.PayslipEmployee(ctx, id)
	case authz_model.ResourceRequisition:
		owner, err = o.store.RequisitionRequester(ctx, id)
	default:
		return false
	}
	if err != nil {
		logger.Warn("Ownership lookup failed",
			zap.String("resource", string(resource)),
			zap.Uint("resourceID", id),
			zap.Uint("userID", identity.UserID),
			zap.Error(err))
		return false
	}
	return owner == identity.UserID
}

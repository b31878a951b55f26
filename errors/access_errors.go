package errors

import "errors"

var (
	ErrRoleNotFound    = errors.New("role not found")
	ErrRoleConflict    = errors.New("role conflict")
	ErrInvalidRoleData = errors.New("invalid role data")

	ErrPermissionNotFound = errors.New("permission not found")
	ErrMenuNotFound       = errors.New("menu not found")

	// Authorization engine failure modes. All of them collapse to a deny at
	// the middleware boundary; the distinction exists for logging only.
	ErrRouteNotConfigured = errors.New("route not configured")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("forbidden")
	ErrAccessResolution   = errors.New("access resolution failed")
)

package engine

import (
	"context"

	"go.uber.org/zap"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
	logger "github.com/atlas-hrms/atlas/api/logging"
)

// Evaluator combines registry, resolver, cache and ownership into the single
// per-request authorization decision. It runs once for every inbound request
// before any controller executes. Every failure mode, including resolver
// errors, collapses to a deny; nothing here ever fails open.
type Evaluator struct {
	registry  *Registry
	resolver  *PermissionResolver
	cache     *ResolutionCache
	ownership *OwnershipResolver
}

func NewEvaluator(registry *Registry, resolver *PermissionResolver, cache *ResolutionCache, ownership *OwnershipResolver) *Evaluator {
	return &Evaluator{
		registry:  registry,
		resolver:  resolver,
		cache:     cache,
		ownership: ownership,
	}
}

// Authorize gates one request. authenticated is false for anonymous callers;
// userID is only meaningful when authenticated is true.
//
// Evaluation order: registry lookup, public short-circuit, authentication,
// authenticated-only short-circuit, role check with ownership fallback,
// permission check. Role satisfaction alone passes the role step regardless
// of any configured permission list; ownership only acts as a fallback when
// role membership fails and the rule allows it.
func (e *Evaluator) Authorize(ctx context.Context, method, path string, userID uint, authenticated bool) authz_model.Decision {
	match, ok := e.registry.Lookup(method, path)
	if !ok {
		logger.Warn("Request to route with no access rule",
			zap.String("method", method),
			zap.String("path", path))
		return authz_model.Deny(authz_model.ReasonUnconfiguredRoute)
	}
	rule := match.Rule

	if rule.Public {
		return authz_model.Allow()
	}

	if !authenticated {
		return authz_model.Deny(authz_model.ReasonUnauthenticated)
	}

	if rule.AuthenticatedOnly {
		return authz_model.Allow()
	}

	var identity authz_model.Identity
	resolved := false

	if len(rule.Roles) > 0 {
		id, err := e.identity(ctx, userID)
		if err != nil {
			// Resolution failure is forbidden, never allow and never a 5xx.
			return authz_model.Deny(authz_model.ReasonInsufficientRole)
		}
		identity = id
		resolved = true

		if !identity.HasAnyRole(rule.Roles) {
			if rule.AllowOwn {
				if param, ok := match.Param(path); ok && e.ownership.Owns(ctx, identity, rule.Resource, param) {
					return authz_model.Allow()
				}
			}
			return authz_model.Deny(authz_model.ReasonInsufficientRole)
		}
	}

	if len(rule.Permissions) > 0 {
		if !resolved {
			id, err := e.identity(ctx, userID)
			if err != nil {
				return authz_model.Deny(authz_model.ReasonInsufficientPermission)
			}
			identity = id
		}
		if !identity.HasAnyPermission(rule.Permissions) {
			return authz_model.Deny(authz_model.ReasonInsufficientPermission)
		}
	}

	return authz_model.Allow()
}

// Identity returns the caller's resolved identity, from cache when fresh.
// Controllers that need the derived sets (menu access) use this too, so a
// request never resolves twice.
func (e *Evaluator) Identity(ctx context.Context, userID uint) (authz_model.Identity, error) {
	return e.identity(ctx, userID)
}

// Invalidate drops one user's cached resolution. Called synchronously by
// role-assignment collaborators after their write commits.
func (e *Evaluator) Invalidate(userID uint) {
	e.cache.Invalidate(userID)
}

// InvalidateAll drops every cached resolution. Called when a role's
// permission set changes.
func (e *Evaluator) InvalidateAll() {
	e.cache.InvalidateAll()
}

func (e *Evaluator) identity(ctx context.Context, userID uint) (authz_model.Identity, error) {
	if identity, ok := e.cache.Get(userID); ok {
		return identity, nil
	}
	// Two concurrent misses for the same user may resolve redundantly; the
	// underlying reads are idempotent and cheap, so there is no singleflight.
	identity, err := e.resolver.Resolve(ctx, userID)
	if err != nil {
		return authz_model.Identity{}, err
	}
	e.cache.Put(userID, identity)
	return identity, nil
}

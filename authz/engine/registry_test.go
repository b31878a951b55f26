package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
)

func TestRegistryExactBeforePattern(t *testing.T) {
	r := NewRegistry()
	r.Register("GET", "/api/v1/leaves/balance", authz_model.AccessRule{AuthenticatedOnly: true})
	r.Register("GET", "/api/v1/leaves/:id", authz_model.AccessRule{Roles: []string{RoleAdmin}})

	match, ok := r.Lookup("GET", "/api/v1/leaves/balance")
	assert.True(t, ok)
	assert.True(t, match.Rule.AuthenticatedOnly)
	assert.Empty(t, match.Rule.Roles)

	match, ok = r.Lookup("GET", "/api/v1/leaves/17")
	assert.True(t, ok)
	assert.Equal(t, []string{RoleAdmin}, match.Rule.Roles)
}

func TestRegistryDistinguishesSuffixRoutes(t *testing.T) {
	r := NewRegistry()
	r.Register("GET", "/api/v1/leaves/:id", authz_model.AccessRule{AllowOwn: true, Resource: authz_model.ResourceLeave})
	r.Register("PUT", "/api/v1/leaves/:id/status", authz_model.AccessRule{Permissions: []string{"Leaves:update"}})

	match, ok := r.Lookup("PUT", "/api/v1/leaves/17/status")
	assert.True(t, ok)
	assert.Equal(t, []string{"Leaves:update"}, match.Rule.Permissions)

	match, ok = r.Lookup("GET", "/api/v1/leaves/17")
	assert.True(t, ok)
	assert.True(t, match.Rule.AllowOwn)
}

func TestRegistryMethodSensitive(t *testing.T) {
	r := NewRegistry()
	r.Register("GET", "/api/v1/users/:id", authz_model.AccessRule{AuthenticatedOnly: true})

	_, ok := r.Lookup("DELETE", "/api/v1/users/5")
	assert.False(t, ok)

	_, ok = r.Lookup("get", "/api/v1/users/5")
	assert.True(t, ok, "method comparison is case-insensitive")
}

func TestRegistryLookupMiss(t *testing.T) {
	r := NewRegistry()
	r.Register("GET", "/api/v1/users", authz_model.AccessRule{Roles: []string{RoleAdmin}})

	_, ok := r.Lookup("GET", "/api/v1/unknown")
	assert.False(t, ok)

	// A parameter segment holding a non-numeric token does not match.
	r.Register("GET", "/api/v1/users/:id", authz_model.AccessRule{Roles: []string{RoleAdmin}})
	_, ok = r.Lookup("GET", "/api/v1/users/abc")
	assert.False(t, ok)
}

func TestRouteMatchParam(t *testing.T) {
	r := NewRegistry()
	r.Register("GET", "/api/v1/users/:id", authz_model.AccessRule{AllowOwn: true, Resource: authz_model.ResourceUser})

	match, ok := r.Lookup("GET", "/api/v1/users/42")
	assert.True(t, ok)

	param, ok := match.Param("/api/v1/users/42")
	assert.True(t, ok)
	assert.Equal(t, "42", param)
}

func TestDefaultRouteTable(t *testing.T) {
	r := NewRegistry()
	RegisterDefaultRoutes(r)

	match, ok := r.Lookup("POST", "/api/v1/auth/login")
	assert.True(t, ok)
	assert.True(t, match.Rule.Public)

	match, ok = r.Lookup("GET", "/api/v1/users/42")
	assert.True(t, ok)
	assert.True(t, match.Rule.AllowOwn)
	assert.Equal(t, authz_model.ResourceUser, match.Rule.Resource)

	match, ok = r.Lookup("PUT", "/api/v1/roles/3/permissions")
	assert.True(t, ok)
	assert.Equal(t, []string{RoleAdmin}, match.Rule.Roles)

	match, ok = r.Lookup("GET", "/api/v1/leaves/mine")
	assert.True(t, ok)
	assert.True(t, match.Rule.AuthenticatedOnly)
	assert.Empty(t, match.Rule.Roles)

	_, ok = r.Lookup("GET", "/api/v1/leaves/abc")
	assert.False(t, ok)
}

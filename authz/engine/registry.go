package engine

import (
	"strings"

	authz_model "github.com/atlas-hrms/atlas/api/authz/model"
)

// Registry is the static table mapping (method, path pattern) to an
// AccessRule. It is populated once at startup and never mutated afterwards;
// adding a route is a code change, not a data change. A lookup miss means
// default-deny for the caller.
type Registry struct {
	exact  map[string]authz_model.AccessRule
	routes []registeredRoute
}

type registeredRoute struct {
	method  string
	pattern routePattern
	rule    authz_model.AccessRule
}

// RouteMatch is the result of a successful registry lookup: the rule plus
// the matched pattern, kept so the ownership check can extract the route
// parameter later.
type RouteMatch struct {
	Rule    authz_model.AccessRule
	Pattern string

	pattern routePattern
}

// Param returns the path segment aligned with the pattern's parameter
// marker, if the pattern has one.
func (m *RouteMatch) Param(path string) (string, bool) {
	return m.pattern.extractParam(path)
}

func NewRegistry() *Registry {
	return &Registry{exact: make(map[string]authz_model.AccessRule)}
}

// Register adds one route rule. Literal patterns are additionally indexed
// for O(1) exact lookup; parameterized patterns are matched in registration
// order.
func (r *Registry) Register(method, pattern string, rule authz_model.AccessRule) {
	method = strings.ToUpper(method)
	parsed := parsePattern(pattern)
	if !parsed.hasParam() {
		r.exact[method+":"+pattern] = rule
	}
	r.routes = append(r.routes, registeredRoute{method: method, pattern: parsed, rule: rule})
}

// Lookup finds the rule for an incoming (method, path). Exact match first,
// then the first parameterized pattern in registration order. The second
// return is false when no rule is registered; callers must treat that as
// deny.
func (r *Registry) Lookup(method, path string) (*RouteMatch, bool) {
	method = strings.ToUpper(method)
	if rule, ok := r.exact[method+":"+path]; ok {
		return &RouteMatch{Rule: rule, Pattern: path, pattern: parsePattern(path)}, true
	}
	for _, route := range r.routes {
		if route.method != method {
			continue
		}
		if route.pattern.matches(path) {
			return &RouteMatch{Rule: route.rule, Pattern: route.pattern.raw, pattern: route.pattern}, true
		}
	}
	return nil, false
}

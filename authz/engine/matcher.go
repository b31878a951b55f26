package engine

import "strings"

// routePattern is a parameterized path pattern parsed once at registration.
// A ":name" segment matches exactly one path segment holding a positive
// decimal integer; every other segment must match literally, and segment
// counts must agree. There is no wildcard or catch-all support.
type routePattern struct {
	raw      string
	segments []patternSegment
}

type patternSegment struct {
	literal string
	param   bool
}

func parsePattern(raw string) routePattern {
	parts := splitPath(raw)
	segments := make([]patternSegment, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, ":") {
			segments = append(segments, patternSegment{param: true})
		} else {
			segments = append(segments, patternSegment{literal: part})
		}
	}
	return routePattern{raw: raw, segments: segments}
}

func (p routePattern) hasParam() bool {
	for _, seg := range p.segments {
		if seg.param {
			return true
		}
	}
	return false
}

// matches reports whether path has the same shape as the pattern.
func (p routePattern) matches(path string) bool {
	parts := splitPath(path)
	if len(parts) != len(p.segments) {
		return false
	}
	for i, seg := range p.segments {
		if seg.param {
			if !isNumericToken(parts[i]) {
				return false
			}
			continue
		}
		if seg.literal != parts[i] {
			return false
		}
	}
	return true
}

// extractParam walks pattern and path in lockstep and returns the path
// segment aligned with the first parameter marker. Every gated route in the
// registry carries at most one ownership-relevant identifier, so the first
// marker is sufficient.
func (p routePattern) extractParam(path string) (string, bool) {
	parts := splitPath(path)
	if len(parts) != len(p.segments) {
		return "", false
	}
	for i, seg := range p.segments {
		if seg.param {
			return parts[i], true
		}
	}
	return "", false
}

func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

// isNumericToken reports whether s looks like a positive decimal integer.
// Route identifiers are numeric primary keys; anything else does not match
// a parameter segment.
func isNumericToken(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

package model

// Deny reasons surfaced by the evaluator. Middleware maps ReasonUnauthenticated
// to 401 and everything else to 403; the reasons never reach response bodies
// beyond a generic message.
const (
	ReasonUnconfiguredRoute      = "route not configured"
	ReasonUnauthenticated        = "authentication required"
	ReasonInsufficientRole       = "insufficient role"
	ReasonInsufficientPermission = "insufficient permission"
)

// Decision is the terminal outcome of one authorization pass.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

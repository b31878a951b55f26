// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

type ActivityLog struct {
	Timestamp     time.Time       `json:"timestamp"`
	ActorID       uint            `json:"actor_id"`
	Action        string          `json:"action"` // e.g. "ASSIGN_ROLES", "UPLOAD_DOCUMENT"
	EntityType    string          `json:"entity_type"`
	EntityID      uint            `json:"entity_id"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

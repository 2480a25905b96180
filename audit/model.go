// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// Actions recorded in the audit log
const (
	ActionLogin          = "LOGIN"
	ActionCreatePost     = "CREATE_POST"
	ActionUpdatePost     = "UPDATE_POST"
	ActionDeletePost     = "DELETE_POST"
	ActionCreateComment  = "CREATE_COMMENT"
	ActionApproveComment = "APPROVE_COMMENT"
	ActionDeleteComment  = "DELETE_COMMENT"
	ActionCreateCategory = "CREATE_CATEGORY"
	ActionCreateTag      = "CREATE_TAG"
)

type AuditLog struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	UserID        string          `json:"user_id,omitempty"`
	Action        string          `json:"action"`
	ResourceID    string          `json:"resource_id,omitempty"`
	Success       bool            `json:"success"`
	Reason        string          `json:"reason,omitempty"`
	ClientIP      string          `json:"client_ip,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Query filters audit log searches. Empty fields are ignored.
type Query struct {
	From       time.Time
	To         time.Time
	UserID     string
	ResourceID string
	Size       int
}

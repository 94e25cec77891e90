package lead

import "errors"

// ErrPhoneRequired rejects lead submissions without a phone number.
var ErrPhoneRequired = errors.New("lead phone is required")

// Status values observed in the lead workflow. The remote function treats the
// status as a free-form string, so these are conventions, not an enum.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Lead is a submitted enrollment request.
type Lead struct {
	ID         int    `json:"id"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	Source     string `json:"source"`
	Course     string `json:"course,omitempty"`
	MessageID  int    `json:"message_id,omitempty"`
	YmClientID string `json:"ym_client_id,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// CreateRequest is a public lead submission. UTM tags are forwarded verbatim
// for attribution; YmClientID links the lead to a Yandex Metrika visitor.
type CreateRequest struct {
	Name       string            `json:"name,omitempty"`
	Phone      string            `json:"phone"`
	Source     string            `json:"source"`
	Course     string            `json:"course,omitempty"`
	UTM        map[string]string `json:"utm,omitempty"`
	YmClientID string            `json:"ym_client_id,omitempty"`
}

// Conversion is an offline-conversion report for Yandex Metrika.
type Conversion struct {
	ClientID string `json:"client_id"`
	Phone    string `json:"phone"`
	Course   string `json:"course,omitempty"`
	Datetime string `json:"datetime,omitempty"`
}

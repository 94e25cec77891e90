package messaging

// QueueItem is one scheduled WhatsApp message. The queue lives behind the
// remote messaging function; unknown fields are preserved loosely as strings.
type QueueItem struct {
	ID          int    `json:"id"`
	LeadID      int    `json:"lead_id,omitempty"`
	Phone       string `json:"phone"`
	Message     string `json:"message,omitempty"`
	TemplateID  int    `json:"template_id,omitempty"`
	Status      string `json:"status"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	SentAt      string `json:"sent_at,omitempty"`
	Error       string `json:"error,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Template is a reusable WhatsApp message template.
type Template struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Text         string `json:"text"`
	DelayMinutes int    `json:"delay_minutes,omitempty"`
	IsActive     bool   `json:"is_active"`
}

// Stats is the aggregate delivery report for the queue.
type Stats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
}

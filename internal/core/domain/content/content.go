package content

// Entry is a single editable piece of site copy, keyed by a unique string.
// UpdatedAt is kept as the raw upstream timestamp string: the content function
// serializes timestamps in a non-RFC3339 format and the value is display-only.
type Entry struct {
	ID        int    `json:"id"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Category groups content keys for the admin editor listing.
type Category string

const (
	CategoryContacts Category = "contacts"
	CategorySocial   Category = "social"
	CategoryDates    Category = "dates"
	CategoryOther    Category = "other"
)

// CategoryTitle returns the heading shown above a category section.
func CategoryTitle(c Category) string {
	switch c {
	case CategoryContacts:
		return "Контактная информация"
	case CategorySocial:
		return "Социальные сети"
	case CategoryDates:
		return "Даты и расписание"
	default:
		return "Прочее"
	}
}

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{CategoryContacts, CategorySocial, CategoryDates, CategoryOther}
}

// UpsertRequest is the body of a content write.
type UpsertRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

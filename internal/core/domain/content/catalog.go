package content

import "strings"

// CatalogEntry describes one recognized content key. The category is assigned
// explicitly here rather than derived from the key name, so a key matching
// several naming patterns still lands in exactly one section.
type CatalogEntry struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

// catalog is the full set of recognized content keys. Keys may be offered for
// creation before the corresponding entry exists upstream.
var catalog = []CatalogEntry{
	{Key: "phone", Label: "Телефон", Category: CategoryContacts},
	{Key: "email", Label: "Email", Category: CategoryContacts},
	{Key: "address", Label: "Адрес", Category: CategoryContacts},
	{Key: "working_hours", Label: "Режим работы", Category: CategoryContacts},

	{Key: "instagram_url", Label: "Instagram", Category: CategorySocial},
	{Key: "youtube_url", Label: "YouTube", Category: CategorySocial},
	{Key: "telegram_url", Label: "Telegram", Category: CategorySocial},
	{Key: "whatsapp_url", Label: "WhatsApp", Category: CategorySocial},
	{Key: "hero_video_url", Label: "Видео (герой)", Category: CategorySocial},
	{Key: "final_video_url", Label: "Видео (финальное)", Category: CategorySocial},

	{Key: "trial_date", Label: "Дата пробного занятия (Актерское)", Category: CategoryDates},
	{Key: "course_start_date", Label: "Дата начала курса (Актерское)", Category: CategoryDates},
	{Key: "oratory_trial_date", Label: "Дата пробного занятия (Ораторское)", Category: CategoryDates},
	{Key: "oratory_course_start_date", Label: "Дата начала курса (Ораторское)", Category: CategoryDates},
	{Key: "acting_cards_start_date", Label: "Дата начала съемки визиток", Category: CategoryDates},

	{Key: "map_embed", Label: "Карта (embed)", Category: CategoryOther},
	{Key: "kazbek_bio", Label: "Био Казбека", Category: CategoryOther},
	{Key: "olga_bio", Label: "Био Ольги", Category: CategoryOther},
	{Key: "acting_hero_title", Label: "Актерское — заголовок героя", Category: CategoryOther},
	{Key: "acting_hero_subtitle", Label: "Актерское — подзаголовок", Category: CategoryOther},
	{Key: "acting_hero_description", Label: "Актерское — описание", Category: CategoryOther},
	{Key: "acting_about_name", Label: "Актерское — имя блока О нас", Category: CategoryOther},
	{Key: "acting_about_title_0", Label: "Актерское — заголовок блока 1", Category: CategoryOther},
	{Key: "acting_about_title_1", Label: "Актерское — заголовок блока 2", Category: CategoryOther},
	{Key: "acting_about_text_0", Label: "Актерское — текст блока 1", Category: CategoryOther},
	{Key: "acting_about_text_1", Label: "Актерское — текст блока 2", Category: CategoryOther},
	{Key: "oratory_hero_title", Label: "Ораторское — заголовок героя", Category: CategoryOther},
	{Key: "oratory_hero_subtitle", Label: "Ораторское — подзаголовок", Category: CategoryOther},
	{Key: "oratory_hero_description", Label: "Ораторское — описание", Category: CategoryOther},
	{Key: "footer_title", Label: "Футер — заголовок", Category: CategoryOther},
	{Key: "footer_description", Label: "Футер — описание", Category: CategoryOther},
}

var catalogByKey = func() map[string]CatalogEntry {
	m := make(map[string]CatalogEntry, len(catalog))
	for _, e := range catalog {
		m[e.Key] = e
	}
	return m
}()

// contactKeys drives the rule-based fallback for keys outside the catalog.
var contactKeys = map[string]bool{
	"phone":         true,
	"email":         true,
	"address":       true,
	"working_hours": true,
}

// Catalog returns a copy of the full key catalog.
func Catalog() []CatalogEntry {
	out := make([]CatalogEntry, len(catalog))
	copy(out, catalog)
	return out
}

// InCatalog reports whether key is a recognized catalog key.
func InCatalog(key string) bool {
	_, ok := catalogByKey[key]
	return ok
}

// Label returns the human-readable label for a key, or the raw key for keys
// outside the catalog.
func Label(key string) string {
	if e, ok := catalogByKey[key]; ok {
		return e.Label
	}
	return key
}

// CategoryOf resolves the category for a key. Catalog keys use their declared
// category. Operator-added keys fall back to naming rules with a fixed
// precedence: the contact-field list wins over "_url", which wins over "date".
func CategoryOf(key string) Category {
	if e, ok := catalogByKey[key]; ok {
		return e.Category
	}
	switch {
	case contactKeys[key]:
		return CategoryContacts
	case strings.Contains(key, "_url"):
		return CategorySocial
	case strings.Contains(key, "date"):
		return CategoryDates
	default:
		return CategoryOther
	}
}

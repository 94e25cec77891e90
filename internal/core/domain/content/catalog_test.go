package content_test

import (
	"testing"

	"github.com/scenastudio/site-backend/internal/core/domain/content"
)

func TestCategoryOf_CatalogKeys(t *testing.T) {
	cases := map[string]content.Category{
		"phone":          content.CategoryContacts,
		"email":          content.CategoryContacts,
		"instagram_url":  content.CategorySocial,
		"hero_video_url": content.CategorySocial,
		"trial_date":     content.CategoryDates,
		"map_embed":      content.CategoryOther,
		"kazbek_bio":     content.CategoryOther,
	}
	for key, want := range cases {
		if got := content.CategoryOf(key); got != want {
			t.Fatalf("CategoryOf(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestCategoryOf_FallbackPrecedence(t *testing.T) {
	// Unknown keys fall back to naming rules: _url beats date.
	if got := content.CategoryOf("promo_url_date"); got != content.CategorySocial {
		t.Fatalf("_url must win over date, got %q", got)
	}
	if got := content.CategoryOf("special_date"); got != content.CategoryDates {
		t.Fatalf("date keys land in dates, got %q", got)
	}
	if got := content.CategoryOf("promo_code"); got != content.CategoryOther {
		t.Fatalf("plain keys land in other, got %q", got)
	}
}

func TestLabel(t *testing.T) {
	if got := content.Label("phone"); got != "Телефон" {
		t.Fatalf("Label(phone) = %q", got)
	}
	if got := content.Label("promo_code"); got != "promo_code" {
		t.Fatalf("unknown keys keep the raw key as label, got %q", got)
	}
}

func TestPartition(t *testing.T) {
	entries := []content.Entry{
		{Key: "phone", Value: "+7 900 000-00-00"},
		{Key: "instagram_url", Value: "https://instagram.com/x"},
		{Key: "promo_code", Value: "SPRING"},
		{Key: "email", Value: "hi@example.com"},
	}
	sections := content.Partition(entries)

	// No date entries, so the dates section must be absent entirely.
	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	if sections[0].Category != content.CategoryContacts || len(sections[0].Entries) != 2 {
		t.Fatalf("contacts section wrong: %+v", sections[0])
	}
	if sections[0].Entries[0].Key != "phone" || sections[0].Entries[1].Key != "email" {
		t.Fatal("input order inside a category must be preserved")
	}
	if sections[1].Category != content.CategorySocial {
		t.Fatalf("second section = %q", sections[1].Category)
	}
	if sections[2].Category != content.CategoryOther || sections[2].Entries[0].Label != "promo_code" {
		t.Fatalf("other section wrong: %+v", sections[2])
	}
	if sections[0].Title == "" {
		t.Fatal("sections carry display titles")
	}
}

func TestPartition_Empty(t *testing.T) {
	if sections := content.Partition(nil); len(sections) != 0 {
		t.Fatalf("no entries should give no sections, got %d", len(sections))
	}
}

func TestCatalogIsCopied(t *testing.T) {
	c := content.Catalog()
	if len(c) == 0 {
		t.Fatal("catalog must not be empty")
	}
	c[0].Key = "mutated"
	if content.Catalog()[0].Key == "mutated" {
		t.Fatal("Catalog must return a copy")
	}
}

func TestInCatalog(t *testing.T) {
	if !content.InCatalog("trial_date") {
		t.Fatal("trial_date is a catalog key")
	}
	if content.InCatalog("promo_code") {
		t.Fatal("promo_code is not a catalog key")
	}
}

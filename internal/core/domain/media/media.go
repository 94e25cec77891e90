package media

// GalleryImage is one photo in the school gallery.
type GalleryImage struct {
	ID       int    `json:"id"`
	URL      string `json:"url"`
	Caption  string `json:"caption,omitempty"`
	OrderNum int    `json:"order_num"`
}

// Review is a student review shown on the landing pages.
type Review struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Text     string `json:"text"`
	Rating   int    `json:"rating"`
	ImageURL string `json:"image_url,omitempty"`
	OrderNum int    `json:"order_num"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	OrderNum int    `json:"order_num"`
}

// TeamMember is a teacher or staff profile.
type TeamMember struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Bio       string `json:"bio,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	SortOrder int    `json:"sort_order"`
}

package course

// Module is one block of a course program (acting or public speaking).
type Module struct {
	ID          int    `json:"id"`
	CourseType  string `json:"course_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Result      string `json:"result"`
	ImageURL    string `json:"image_url,omitempty"`
	OrderNum    int    `json:"order_num"`
}

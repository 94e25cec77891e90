package blog

// EmptyState tells the listing view which empty branch to render.
type EmptyState string

const (
	// EmptyNone means the page has posts.
	EmptyNone EmptyState = ""
	// EmptyNoPosts is page 1 of a blog with no posts at all.
	EmptyNoPosts EmptyState = "no_posts"
	// EmptyOutOfRange is a page beyond the available range; the view offers
	// a link back to the first page.
	EmptyOutOfRange EmptyState = "out_of_range"
)

// PageView is everything the listing page needs to render one page of posts.
type PageView struct {
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
	Posts      []Post     `json:"posts"`
	Window     Window     `json:"window"`
	PrevPage   int        `json:"prev_page,omitempty"`
	NextPage   int        `json:"next_page,omitempty"`
	Canonical  string     `json:"canonical"`
	Empty      EmptyState `json:"empty,omitempty"`
	BackPath   string     `json:"back_path,omitempty"`
}

// BuildPageView assembles the listing view model for a fetched page. The page
// number is the one the fetch was issued for; list is the upstream response
// (zero-valued after a failed fetch, which degrades into the empty branches).
func BuildPageView(base string, page int, list List) PageView {
	if page < 1 {
		page = 1
	}
	v := PageView{
		Page:       page,
		PerPage:    PerPage,
		Total:      list.Total,
		TotalPages: list.TotalPages,
		Posts:      list.Items,
		Window:     PageWindow(page, list.TotalPages),
		Canonical:  PagePath(base, page),
	}
	if v.Posts == nil {
		v.Posts = []Post{}
	}
	if page > 1 {
		v.PrevPage = page - 1
	}
	if page < list.TotalPages {
		v.NextPage = page + 1
	}
	if len(v.Posts) == 0 {
		if page > 1 {
			v.Empty = EmptyOutOfRange
			v.BackPath = base
		} else {
			v.Empty = EmptyNoPosts
		}
	}
	return v
}

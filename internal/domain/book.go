package domain

type Book struct {
	ID              int32  `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	TotalCopies     int32  `json:"total_copies"`
	AvailableCopies int32  `json:"available_copies"`
	Quantity        int32  `json:"quantity"`
	Shelf           string `json:"shelf"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	PublishedYear   *int32 `json:"published_year"`
	Publisher       string `json:"publisher"`
	CoverImage      string `json:"cover_image"`
	CreatedAt       string `json:"created_at"`
}

// BookUpdate carries a partial book update. Only non-nil fields are applied;
// everything else keeps its stored value.
type BookUpdate struct {
	Title           *string `json:"title,omitempty"`
	Author          *string `json:"author,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	TotalCopies     *int32  `json:"total_copies,omitempty"`
	AvailableCopies *int32  `json:"available_copies,omitempty"`
	Quantity        *int32  `json:"quantity,omitempty"`
	Shelf           *string `json:"shelf,omitempty"`
	Category        *string `json:"category,omitempty"`
	Description     *string `json:"description,omitempty"`
	PublishedYear   *int32  `json:"published_year,omitempty"`
	Publisher       *string `json:"publisher,omitempty"`
	CoverImage      *string `json:"cover_image,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Author == nil && u.ISBN == nil &&
		u.TotalCopies == nil && u.AvailableCopies == nil && u.Quantity == nil &&
		u.Shelf == nil && u.Category == nil && u.Description == nil &&
		u.PublishedYear == nil && u.Publisher == nil && u.CoverImage == nil
}

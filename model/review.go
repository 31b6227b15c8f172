package model

// UnratedBook is a book the user may still review.
type UnratedBook struct {
	BookID int64  `json:"book_id"`
	Title  string `json:"title"`
}

// ReviewRow is one row of the all_reviews projection.
type ReviewRow struct {
	Reviewer  string `json:"reviewer"`
	BookTitle string `json:"book_title"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
}

// Recommendation is a ranked candidate for a user: a book they have not rated,
// carrying the mean of everyone else's ratings.
type Recommendation struct {
	BookID          int64   `json:"book_id"`
	Title           string  `json:"title"`
	AuthorFirstName string  `json:"author_first_name"`
	AuthorLastName  string  `json:"author_last_name"`
	GenreName       string  `json:"genre_name"`
	AvgRating       float64 `json:"avg_rating"`
}

package review

type SubmitReviewReq struct {
	BookID int64  `json:"book_id" validate:"required,gt=0"`
	Score  int    `json:"score" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

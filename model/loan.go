package model

import "time"

type Loan struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	BookID     int64      `json:"book_id"`
	LoanDate   time.Time  `json:"loan_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// AvailableBook is one row of the issuing list: only books with copies on the shelf.
type AvailableBook struct {
	BookID          int64  `json:"book_id"`
	Title           string `json:"title"`
	AvailableCopies int    `json:"available_copies"`
}

// OpenLoan is one row of a user's not-yet-returned loans.
type OpenLoan struct {
	LoanID   int64     `json:"loan_id"`
	Title    string    `json:"title"`
	LoanDate time.Time `json:"loan_date"`
}

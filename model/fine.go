package model

type FineStatus string

const (
	FinePending FineStatus = "pending"
	FinePaid    FineStatus = "paid"
)

type Fine struct {
	Amount float64    `json:"amount"`
	Status FineStatus `json:"status"`
}

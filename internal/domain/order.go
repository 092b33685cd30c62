package domain

type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusPacked    Status = "Packed"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
)

// Stages is the fixed lifecycle sequence shown on the tracking page.
var Stages = [4]Status{StatusConfirmed, StatusPacked, StatusShipped, StatusDelivered}

// StageIndex returns the position of s in Stages, or -1 for anything
// outside the fixed sequence.
func StageIndex(s Status) int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

type Order struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status Status `json:"status"`
}

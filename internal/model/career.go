package model

import "time"

var CareerStatuses = []string{"new", "reviewing", "shortlisted", "rejected", "hired"}

// CareerApplication is a job application. Resume and Portfolio hold public
// file URLs returned by storage.
type CareerApplication struct {
	ID          string    `json:"id" bson:"_id"`
	Position    string    `json:"position" bson:"position"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone" bson:"phone"`
	Experience  string    `json:"experience,omitempty" bson:"experience,omitempty"`
	CoverLetter string    `json:"coverLetter,omitempty" bson:"coverLetter,omitempty"`
	Resume      string    `json:"resume" bson:"resume"`
	Portfolio   string    `json:"portfolio,omitempty" bson:"portfolio,omitempty"`
	Status      string    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

type CareerListOptions struct {
	Status string
	// Position is a case-insensitive substring match.
	Position string
	Page
}

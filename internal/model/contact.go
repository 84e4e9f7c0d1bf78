package model

import "time"

var ContactStatuses = []string{"new", "read", "replied", "archived"}

// Contact is a message submitted via the contact form.
type Contact struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ContactListOptions filters the admin contact listing.
type ContactListOptions struct {
	// Status "" returns every message.
	Status string
	Page
}

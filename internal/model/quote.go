package model

import "time"

var QuoteStatuses = []string{"new", "reviewed", "sent", "won", "lost"}

// Quote is an instant price request. QuoteAmount, Currency and QuoteDisplay
// are set once at creation and never updated.
type Quote struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Website      string    `json:"website,omitempty" bson:"website,omitempty"`
	ServiceType  string    `json:"serviceType" bson:"serviceType"`
	CompanySize  string    `json:"companySize" bson:"companySize"`
	Market       string    `json:"market" bson:"market"`
	Timeline     string    `json:"timeline,omitempty" bson:"timeline,omitempty"`
	Budget       string    `json:"budget,omitempty" bson:"budget,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	QuoteAmount  int       `json:"quoteAmount" bson:"quoteAmount"`
	Currency     string    `json:"currency" bson:"currency"`
	QuoteDisplay string    `json:"quoteDisplay" bson:"quoteDisplay"`
	Status       string    `json:"status" bson:"status"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

type QuoteListOptions struct {
	Status string
	Page
}

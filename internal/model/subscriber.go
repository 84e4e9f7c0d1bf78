package model

import "time"

// Subscriber is a newsletter address. Email is unique whether or not the
// subscription is active; unsubscribing only flips IsActive.
type Subscriber struct {
	ID             string     `json:"id" bson:"_id"`
	Email          string     `json:"email" bson:"email"`
	IsActive       bool       `json:"isActive" bson:"isActive"`
	SubscribedAt   time.Time  `json:"subscribedAt" bson:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt" bson:"unsubscribedAt"`
}

type SubscriberListOptions struct {
	Active bool
	Page
}

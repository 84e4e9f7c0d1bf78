package model

import "time"

type Counts struct {
	Total int64 `json:"total"`
	New   int64 `json:"new"`
}

type BlogCounts struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
}

type DashboardStats struct {
	Contacts     Counts     `json:"contacts"`
	Applications Counts     `json:"applications"`
	Quotes       Counts     `json:"quotes"`
	Subscribers  int64      `json:"subscribers"`
	Blogs        BlogCounts `json:"blogs"`
}

type RecentContact struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type RecentApplication struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Position  string    `json:"position" bson:"position"`
	Email     string    `json:"email" bson:"email"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type RecentActivities struct {
	Contacts     []RecentContact     `json:"contacts"`
	Applications []RecentApplication `json:"applications"`
}

// Dashboard is the admin overview returned by one aggregated read.
type Dashboard struct {
	Stats            DashboardStats   `json:"stats"`
	RecentActivities RecentActivities `json:"recentActivities"`
}

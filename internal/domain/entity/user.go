package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Username string `json:"username" firestore:"username"`
	PhotoURL string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	Role     string `json:"role" firestore:"role"`
	Status   string `json:"status" firestore:"status"`

	// Whether the one-time welcome screen has been acknowledged on any
	// of the user's devices.
	HasSeenWelcome bool `json:"has_seen_welcome" firestore:"hasSeenWelcome"`

	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
	LastLoginAt time.Time `json:"last_login_at,omitempty" firestore:"lastLoginAt,omitempty"`
}

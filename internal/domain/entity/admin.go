package entity

import "time"

// AdminUser is a console administrator in the `admins` collection.
type AdminUser struct {
	ID           string     `firestore:"-" json:"id"`
	Email        string     `firestore:"email" json:"email"`
	PasswordHash string     `firestore:"passwordHash" json:"-"`
	Roles        []string   `firestore:"roles" json:"roles"`
	CreatedAt    time.Time  `firestore:"createdAt" json:"createdAt"`
	LastLoginAt  *time.Time `firestore:"lastLoginAt" json:"lastLoginAt,omitempty"`
}

// Enquiry is a merchant onboarding enquiry in the `merchantenquiry`
// collection. The console only lists these.
type Enquiry struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Email     string    `firestore:"email" json:"email"`
	Business  string    `firestore:"business" json:"business"`
	Message   string    `firestore:"message" json:"message"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

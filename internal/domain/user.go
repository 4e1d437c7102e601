package domain

import "time"

// Gender codes stored on user profiles.
const (
	GenderMale    = "0"
	GenderFemale  = "1"
	GenderUnknown = "2"
)

// User is the credential-bearing account for the admin application.
// PasswordHash is the only credential material ever persisted.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	FirstName    string    `bson:"firstName" json:"firstName"`
	LastName     string    `bson:"lastName" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	Gender       string    `bson:"gender" json:"gender"`
	Avatar       string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	PasswordHash string    `bson:"password" json:"-"`
	Permissions  []string  `bson:"permissions" json:"permissions"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	CreatedBy    string    `bson:"createdBy" json:"createdBy"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy    string    `bson:"updatedBy" json:"updatedBy"`
}

// DisplayName joins the name parts the way login responses report them.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// IdentitySnapshot is the identity captured at token issuance. It is embedded
// in token claims and stored in the session registry, so it must stay small
// and free of credential material.
type IdentitySnapshot struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
}

// Snapshot captures the identity of u.
func (u *User) Snapshot() IdentitySnapshot {
	return IdentitySnapshot{
		ID:          u.ID,
		Name:        u.DisplayName(),
		Email:       u.Email,
		Permissions: u.Permissions,
	}
}

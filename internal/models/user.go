package models

// User is the stored record for a sentence-service account.
type User struct {
	Username     string `json:"username" db:"username"`
	PasswordHash []byte `json:"-" db:"password_hash"` // bcrypt hash
	Sentence     string `json:"sentence" db:"sentence"`
	Credits      int64  `json:"credits" db:"credits"`
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	PasswordHash []byte
	Sentence     *string
	Credits      *int64
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.PasswordHash == nil && u.Sentence == nil && u.Credits == nil
}

package domain

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an application user.
type User struct {
	UserID          string       `json:"userID"` // Primary Key (UUID)
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	PasswordHash    string       `json:"-"` // empty for OAuth-only users
	DefaultCurrency string       `json:"defaultCurrency"`
	Provider        AuthProvider `json:"provider"`
	ProviderUserID  string       `json:"-"` // subject claim for OAuth users
	AuditFields
}

// GoogleUserInfo holds the subset of the Google userinfo/idtoken payload the
// application consumes during sign-in.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

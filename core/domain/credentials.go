package domain

// Credentials are the sign-in username and password for the content source
type Credentials struct {
	Username string
	Password string
}

// IsComplete reports whether both fields are set
func (c Credentials) IsComplete() bool {
	return c.Username != "" && c.Password != ""
}

// String hides the password so credentials can be logged safely
func (c Credentials) String() string {
	return "Credentials{Username: " + c.Username + ", Password: ***}"
}

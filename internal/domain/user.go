package domain

// Identity is an entry of the credential table. Identities are defined at startup and never
// change for the lifetime of the process.
type Identity struct {
	Email    string
	Password string
	Role     Role
	Name     string
}

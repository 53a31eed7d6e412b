package entities

// Role gates privileged operations. Only RoleAdmin may delete demands or
// manage reference data.

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is an operator account. PasswordHash is a bcrypt hash and is never
// exported through the HTTP layer; the legacy import format may still carry a
// plaintext "password" field, which is hashed at the import boundary.
type User struct {
	Username     string `json:"username"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

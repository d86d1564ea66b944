package entity

// Identity is the verified claim carried by a bearer token.
type Identity struct {
	UID   string
	Email string
}

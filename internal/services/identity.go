package services

// Identity is what the wizard consumes from the identity layer: who the
// user is plus the bearer token forwarded to remote collaborators. The
// wizard never authenticates anyone itself.
type Identity struct {
	UserID      uint
	Email       string
	DisplayName string
	Federated   bool
	Token       string
}

package domain

// Contact is a directed edge: UserID can message ContactUserID.
// Contacts are created and removed in pairs so visibility stays symmetric.
type Contact struct {
	ID            string
	Name          string
	UserID        string
	ContactUserID string
}

// Connects reports whether the edge links a and b, whatever its direction.
func (c Contact) Connects(a, b string) bool {
	return (c.UserID == a && c.ContactUserID == b) || (c.UserID == b && c.ContactUserID == a)
}

// Reverse builds the opposite edge, named after the owner of c.
func (c Contact) Reverse(id, ownerName string) Contact {
	return Contact{
		ID:            id,
		Name:          ownerName,
		UserID:        c.ContactUserID,
		ContactUserID: c.UserID,
	}
}

package core

// Owned is any entity that records the user who created it. The owning
// reference is set once at creation and never reassigned; it is the sole
// authorization anchor.
type Owned interface {
	OwnerID() string
}

// AssertOwner fails with ErrUnauthorized unless requestingUser created the
// entity. Applied before deletes; reactions and reads are not gated.
func AssertOwner(entity Owned, requestingUser string) error {
	if entity.OwnerID() != requestingUser {
		return ErrUnauthorized
	}
	return nil
}

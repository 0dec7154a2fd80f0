package kernel

import "parcels/internal/pkg/errs"

// Caller is the authenticated identity making a request. It is passed explicitly
// into every use case; nothing reads identity from ambient state.
type Caller struct {
	ID   int64
	Role Role
}

func NewCaller(id int64, role Role) (Caller, error) {
	if id <= 0 {
		return Caller{}, errs.NewValueIsRequiredError("caller id")
	}
	if err := role.Validate(); err != nil {
		return Caller{}, err
	}
	return Caller{ID: id, Role: role}, nil
}

// Is reports whether the caller is the user with the given id.
func (c Caller) Is(userID int64) bool {
	return c.ID == userID
}

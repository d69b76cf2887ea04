package models

// User is a console account. Passwords are stored and compared as plain text;
// hardening the login flow is explicitly out of scope for this backend.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Role        UserRole `json:"role"`
	Permissions []View   `json:"permissions"`
}

type NewUser struct {
	Name        string   `json:"name" validate:"required"`
	Username    string   `json:"username" validate:"required"`
	Password    string   `json:"password" validate:"required"`
	Role        UserRole `json:"role" validate:"required,oneof=ADMIN STAFF TECHNICIAN COLLECTION_AGENT"`
	Permissions []View   `json:"permissions" validate:"min=1"`
}

func (u *User) CanView(v View) bool {
	for _, p := range u.Permissions {
		if p == v {
			return true
		}
	}
	return false
}

// HomeView is where the host routes the user right after login: the first
// permitted page (a technician with only COMPLAINTS lands there).
func (u *User) HomeView() View {
	if len(u.Permissions) == 0 {
		return ViewDashboard
	}
	return u.Permissions[0]
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	out.Permissions = make([]View, len(u.Permissions))
	copy(out.Permissions, u.Permissions)
	return &out
}

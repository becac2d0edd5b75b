package domain

import "encoding/json"

// RoleAdmin is the role marker that unlocks the admin panel.
const RoleAdmin = "Admin"

// Roles is the user's role set. The backend is inconsistent about the wire
// representation: newer responses carry a list of strings, older ones a
// single string. The list is canonical; the bare string is accepted as a
// compatibility shim and normalized into a one-element list.
type Roles []string

func (r *Roles) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*r = list
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*r = nil
		return nil
	}
	*r = Roles{single}
	return nil
}

// Contains reports whether the role set includes the given role.
func (r Roles) Contains(role string) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// User is the identity returned by GET /Auth/me.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Roles  `json:"role"`
}

// IsAdmin reports whether the user may see admin-only views.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.Contains(RoleAdmin)
}

// DisplayName is what the header shows for a logged-in user.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}

// Profile is the editable profile returned by GET /Profile/me.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserName  string `json:"userName"`
}

// AuthResponse is the body of a successful login or registration. The token
// field name varies by backend version; BearerToken resolves the variance.
type AuthResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
	Username    string `json:"username"`
	Role        Roles  `json:"role"`
}

// BearerToken returns the session token regardless of which field the
// backend used, or "" when the response carried none.
func (a *AuthResponse) BearerToken() string {
	if a == nil {
		return ""
	}
	if a.Token != "" {
		return a.Token
	}
	return a.AccessToken
}

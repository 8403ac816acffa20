package usecase

import "career-compass/internal/domain"

// Auth resolves login credentials and session user ids against the
// store. Passwords are compared in plaintext: this is a prototype
// shortcut carried over deliberately, not an oversight.
type Auth struct {
	store Store
}

func NewAuth(store Store) *Auth {
	return &Auth{store: store}
}

// Login returns the matching user, or false when the username is
// unknown or the password does not match. The two cases are not
// distinguished for the caller.
func (a *Auth) Login(username, password string) (domain.User, bool) {
	user, ok := a.store.GetUserByUsername(username)
	if !ok {
		return domain.User{}, false
	}
	if user.Password != password {
		return domain.User{}, false
	}
	return user, true
}

// CurrentUser looks up the user behind a session's stored id.
func (a *Auth) CurrentUser(id int) (domain.User, bool) {
	return a.store.GetUser(id)
}

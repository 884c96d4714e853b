package models

// SignUpResult acknowledges a completed registration. No token is issued;
// the account stays PENDING until an administrator approves it.
type SignUpResult struct {
	Message string `json:"message"`
}

// TokenResult carries the bearer token issued on successful sign-in.
type TokenResult struct {
	AccessToken string `json:"access_token"`
}

// UserView is the sanitized profile returned by GET /auth/me.
// It deliberately has no password field.
type UserView struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Status   Status `json:"status"`
}

// View maps a stored user to its sanitized representation.
func (u *User) View() *UserView {
	return &UserView{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		Nickname: u.Nickname,
		Phone:    u.Phone,
		Status:   u.Status,
	}
}

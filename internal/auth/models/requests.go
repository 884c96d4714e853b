package models

// SignUpRequest carries the multipart form fields of POST /auth/sign-up.
// The license file travels separately as a LicenseFile.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,notblank"`
	Nickname string `json:"nickname" validate:"required,notblank"`
	Phone    string `json:"phone" validate:"required,notblank"`
}

// SignInRequest is the JSON body of POST /auth/sign-in.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

package models

// Status tracks the admin review state of an account or license.
// Accounts are created PENDING and flipped to APPROVED or REJECTED by an
// out-of-band admin process; this service never performs that transition.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// User is a row in the backend users table. The password column stores the
// bcrypt digest, never plaintext.
type User struct {
	ID             int64  `json:"id,omitempty"`
	Email          string `json:"email"`
	PasswordDigest string `json:"password"`
	Name           string `json:"name"`
	Nickname       string `json:"nickname"`
	Phone          string `json:"phone"`
	Status         Status `json:"status"`
}

// LawyerLicense is a row in the backend lawyer_licenses table, pointing at an
// uploaded license document in blob storage.
type LawyerLicense struct {
	ID       int64  `json:"id,omitempty"`
	UserID   int64  `json:"user_id"`
	FilePath string `json:"file_path"`
	Status   Status `json:"status"`
}

// LicenseFile is an uploaded license document before it reaches blob storage.
type LicenseFile struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

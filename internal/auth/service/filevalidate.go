package service

import (
	"lawgate/internal/auth/models"
	dErrors "lawgate/pkg/domain-errors"
)

// MaxLicenseFileSize caps license uploads at 5 MiB.
const MaxLicenseFileSize = 5 << 20

// allowedContentTypes maps accepted MIME types to the extension used in the
// generated blob key.
var allowedContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// ValidateLicenseFile is the pure predicate run before any sign-up side
// effect. Each violation maps to a distinct human-readable message.
func ValidateLicenseFile(file *models.LicenseFile) error {
	if file == nil || len(file.Content) == 0 {
		return dErrors.New(dErrors.CodeValidation, "license file is required")
	}
	if _, ok := allowedContentTypes[file.ContentType]; !ok {
		return dErrors.New(dErrors.CodeValidation, "license file type not allowed (jpeg, png, or pdf only)")
	}
	size := file.Size
	if size == 0 {
		size = int64(len(file.Content))
	}
	if size > MaxLicenseFileSize {
		return dErrors.New(dErrors.CodeValidation, "license file must not exceed 5 MiB")
	}
	return nil
}

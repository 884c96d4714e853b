package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lawgate/internal/auth/models"
	"lawgate/internal/auth/service"
	"lawgate/internal/platform/middleware"
	dErrors "lawgate/pkg/domain-errors"
	"lawgate/pkg/platform/httputil"
	s "lawgate/pkg/string"
	"lawgate/pkg/validation"
)

// licenseField is the multipart field carrying the license document.
const licenseField = "license"

// maxMultipartMemory bounds how much of the form is held in memory before
// spilling to disk. The file itself may legitimately be up to the 5 MiB cap.
const maxMultipartMemory = 8 << 20

// Service defines the interface for the authentication operations.
type Service interface {
	SignUp(ctx context.Context, req *models.SignUpRequest, file *models.LicenseFile) (*models.SignUpResult, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.TokenResult, error)
	Profile(ctx context.Context, userID int64) (*models.UserView, error)
}

// Handler handles the authentication endpoints: sign-up, sign-in, and me.
type Handler struct {
	auth   Service
	logger *slog.Logger
}

// New creates a new auth Handler with the given service and logger.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Register registers the public auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/sign-up", h.HandleSignUp)
	r.Post("/auth/sign-in", h.HandleSignIn)
}

// RegisterProtected registers routes that require the auth middleware.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/auth/me", h.HandleMe)
}

// HandleSignUp implements POST /auth/sign-up.
// Multipart body: email, password, name, nickname, phone fields plus one
// "license" file (jpeg/png/pdf, at most 5 MiB).
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.logger.WarnContext(ctx, "failed to parse sign-up form",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid multipart form"))
		return
	}

	req := &models.SignUpRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Name:     r.FormValue("name"),
		Nickname: r.FormValue("nickname"),
		Phone:    r.FormValue("phone"),
	}
	s.TrimStrings(&req.Email, &req.Name, &req.Nickname, &req.Phone)

	if err := validation.Validate(req); err != nil {
		h.logger.WarnContext(ctx, "invalid sign-up request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	file, err := readLicenseFile(r)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to read license file",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid license file upload"))
		return
	}

	result, err := h.auth.SignUp(ctx, req, file)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, result)
}

// readLicenseFile extracts the license part of the multipart form. A missing
// part yields a nil file; the service turns that into a validation error so
// the message matches the other file violations.
func readLicenseFile(r *http.Request) (*models.LicenseFile, error) {
	part, header, err := r.FormFile(licenseField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer part.Close()

	// Read one byte past the cap so oversized uploads are still detected
	// by the validator rather than silently truncated.
	content, err := io.ReadAll(io.LimitReader(part, service.MaxLicenseFileSize+1))
	if err != nil {
		return nil, err
	}

	return &models.LicenseFile{
		Filename:    header.Filename,
		ContentType: partContentType(header),
		Size:        header.Size,
		Content:     content,
	}, nil
}

func partContentType(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}

// HandleSignIn implements POST /auth/sign-in.
// Input: { "email": "user@example.com", "password": "..." }
// Output: { "access_token": "..." } or a uniform 401.
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sign-in request",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}
	s.TrimStrings(&req.Email)

	if err := validation.Validate(&req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	result, err := h.auth.SignIn(ctx, &req)
	if err != nil {
		h.logger.WarnContext(ctx, "sign-in failed",
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleMe implements GET /auth/me for authenticated callers.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	userID, err := strconv.ParseInt(middleware.GetUserID(ctx), 10, 64)
	if err != nil {
		h.logger.ErrorContext(ctx, "user id missing from context despite auth middleware",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
		return
	}

	profile, err := h.auth.Profile(ctx, userID)
	if err != nil {
		h.logger.WarnContext(ctx, "profile lookup failed",
			"error", err,
			"user_id", userID,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, profile)
}

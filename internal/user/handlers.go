package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yoursport/admin-api/internal/validation"
	"github.com/yoursport/admin-api/server"
	"github.com/yoursport/admin-api/services/auth"
	"github.com/yoursport/admin-api/services/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handlers struct {
	repo    Repository
	authSvc *auth.Service
	logger  *logging.Service
}

func NewHandlers(repo Repository, authSvc *auth.Service, logger *logging.Service) *Handlers {
	return &Handlers{
		repo:    repo,
		authSvc: authSvc,
		logger:  logger,
	}
}

func (h *Handlers) RegisterRoutes(srv *server.Server) {
	srv.Get("/users/", h.List)
	srv.Post("/users/", h.Create)
	srv.Get("/users/:id/", h.Get)
	srv.Put("/users/:id/", h.Update)
	srv.Patch("/users/:id/", h.PartialUpdate)
	srv.Delete("/users/:id/", h.Delete)

	srv.Get("/staff-users/", h.StaffList)
	srv.Put("/staff-users/:id/", h.StaffUpdate)
	srv.Patch("/staff-users/:id/", h.StaffPartialUpdate)
	srv.Delete("/staff-users/:id/", h.StaffDelete)
}

type CreateUserRequest struct {
	FullName    string `json:"full_name"`
	Institution string `json:"institution"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsSchool    bool   `json:"is_school"`
	IsCorporate bool   `json:"is_corporate"`
}

func (req *CreateUserRequest) validate() validation.FieldErrors {
	errs := validation.New()
	errs.Required("full_name", req.FullName)
	errs.Required("email", req.Email)
	errs.Required("password", req.Password)
	if req.Email != "" && !validation.IsValidEmail(req.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	return errs
}

type updateUserRequest struct {
	FullName    *string `json:"full_name"`
	Institution *string `json:"institution"`
	Address     *string `json:"address"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	IsActive    *bool   `json:"is_active"`
	IsStaff     *bool   `json:"is_staff"`
	IsSchool    *bool   `json:"is_school"`
	IsCorporate *bool   `json:"is_corporate"`
}

func (h *Handlers) List(c echo.Context) error {
	users, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser persists a new account with a hashed password. Shared by the
// admin create endpoint and the public registration endpoint.
func (h *Handlers) CreateUser(req *CreateUserRequest) (*User, validation.FieldErrors, error) {
	// Canonicalize before validating so padding or casing never fails a
	// format check the stored value would pass.
	req.Email = NormalizeEmail(req.Email)
	errs := req.validate()
	if errs.HasErrors() {
		return nil, errs, nil
	}

	exists, err := h.repo.EmailExists(req.Email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		errs.Add("email", "user with this email already exists.")
		return nil, errs, nil
	}

	hash, err := h.authSvc.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordHashingFailed) {
			return nil, nil, err
		}
		errs.Add("password", err.Error())
		return nil, errs, nil
	}

	u := &User{
		FullName:    req.FullName,
		Institution: req.Institution,
		Address:     req.Address,
		Email:       req.Email,
		Password:    hash,
		IsActive:    true,
		IsSchool:    req.IsSchool,
		IsCorporate: req.IsCorporate,
	}
	if err := h.repo.Create(u); err != nil {
		return nil, nil, err
	}

	h.logger.Info("user created", zap.Uint("user_id", u.ID))
	return u, nil, nil
}

func (h *Handlers) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	u, errs, err := h.CreateUser(&req)
	if err != nil {
		return err
	}
	if errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	return c.JSON(http.StatusCreated, u)
}

func (h *Handlers) Get(c echo.Context) error {
	u, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handlers) Update(c echo.Context) error {
	return h.update(c, false)
}

func (h *Handlers) PartialUpdate(c echo.Context) error {
	return h.update(c, true)
}

func (h *Handlers) update(c echo.Context, partial bool) error {
	u, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.Email != nil {
		*req.Email = NormalizeEmail(*req.Email)
	}

	errs := validation.New()
	if !partial {
		if req.FullName == nil || *req.FullName == "" {
			errs.Add("full_name", "This field is required.")
		}
		if req.Email == nil || *req.Email == "" {
			errs.Add("email", "This field is required.")
		}
	}
	if req.Email != nil && *req.Email != "" && !validation.IsValidEmail(*req.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	if partial && req.Email != nil && *req.Email == "" {
		errs.Add("email", "This field is required.")
	}
	if errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	if req.Email != nil {
		if *req.Email != u.Email {
			exists, err := h.repo.EmailExists(*req.Email)
			if err != nil {
				return err
			}
			if exists {
				errs.Add("email", "user with this email already exists.")
				return c.JSON(http.StatusBadRequest, errs)
			}
		}
		u.Email = *req.Email
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Institution != nil {
		u.Institution = *req.Institution
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.Password != nil {
		hash, err := h.authSvc.HashPassword(*req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordHashingFailed) {
				return err
			}
			errs.Add("password", err.Error())
			return c.JSON(http.StatusBadRequest, errs)
		}
		u.Password = hash
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.IsStaff != nil {
		u.IsStaff = *req.IsStaff
	}
	if req.IsSchool != nil {
		u.IsSchool = *req.IsSchool
	}
	if req.IsCorporate != nil {
		u.IsCorporate = *req.IsCorporate
	}

	if err := h.repo.Update(u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handlers) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// StaffUser is the reduced representation exposed on the staff endpoints.
type StaffUser struct {
	ID          uint   `json:"id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Institution string `json:"institution"`
	Address     string `json:"address"`
}

func toStaffUser(u *User) StaffUser {
	return StaffUser{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Institution: u.Institution,
		Address:     u.Address,
	}
}

func (h *Handlers) StaffList(c echo.Context) error {
	users, err := h.repo.ListStaff()
	if err != nil {
		return err
	}

	staff := make([]StaffUser, 0, len(users))
	for i := range users {
		staff = append(staff, toStaffUser(&users[i]))
	}
	return c.JSON(http.StatusOK, staff)
}

type staffUpdateRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Institution *string `json:"institution"`
	Address     *string `json:"address"`
}

func (h *Handlers) StaffUpdate(c echo.Context) error {
	return h.staffUpdate(c, false)
}

func (h *Handlers) StaffPartialUpdate(c echo.Context) error {
	return h.staffUpdate(c, true)
}

func (h *Handlers) staffUpdate(c echo.Context, partial bool) error {
	u, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req staffUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}
	if req.Email != nil {
		*req.Email = NormalizeEmail(*req.Email)
	}

	errs := validation.New()
	if !partial {
		if req.FullName == nil || *req.FullName == "" {
			errs.Add("full_name", "This field is required.")
		}
		if req.Email == nil || *req.Email == "" {
			errs.Add("email", "This field is required.")
		}
	}
	if req.Email != nil && *req.Email != "" && !validation.IsValidEmail(*req.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	if partial && req.Email != nil && *req.Email == "" {
		errs.Add("email", "This field is required.")
	}
	if errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	if req.Email != nil {
		if *req.Email != u.Email {
			exists, err := h.repo.EmailExists(*req.Email)
			if err != nil {
				return err
			}
			if exists {
				errs.Add("email", "user with this email already exists.")
				return c.JSON(http.StatusBadRequest, errs)
			}
		}
		u.Email = *req.Email
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Institution != nil {
		u.Institution = *req.Institution
	}
	if req.Address != nil {
		u.Address = *req.Address
	}

	if err := h.repo.Update(u); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStaffUser(u))
}

func (h *Handlers) StaffDelete(c echo.Context) error {
	return h.Delete(c)
}

func (h *Handlers) fetch(c echo.Context) (*User, error) {
	id, ok := parseID(c)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return h.repo.FindByID(id)
}

func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func notFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found."})
}

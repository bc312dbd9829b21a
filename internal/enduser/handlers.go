package enduser

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/yoursport/admin-api/internal/validation"
	"github.com/yoursport/admin-api/server"
	"gorm.io/gorm"
)

type Handlers struct {
	repo Repository
}

func NewHandlers(repo Repository) *Handlers {
	return &Handlers{repo: repo}
}

func (h *Handlers) RegisterRoutes(srv *server.Server) {
	srv.Get("/endusers/", h.List)
	srv.Post("/endusers/", h.Create)
	srv.Get("/endusers/:id/", h.Get)
	srv.Put("/endusers/:id/", h.Update)
	srv.Patch("/endusers/:id/", h.PartialUpdate)
	srv.Delete("/endusers/:id/", h.Delete)

	srv.Get("/userprofile/", h.ListProfiles)
	srv.Post("/userprofile/", h.CreateProfile)
	srv.Get("/userprofile/:id/", h.GetProfile)
	srv.Put("/userprofile/:id/", h.UpdateProfile)
	srv.Patch("/userprofile/:id/", h.PartialUpdateProfile)
	srv.Delete("/userprofile/:id/", h.DeleteProfile)
}

type endUserRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
	Phone    *int64  `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

func (req *endUserRequest) validateFull() validation.FieldErrors {
	errs := validation.New()
	if req.FullName == nil || *req.FullName == "" {
		errs.Add("full_name", "This field is required.")
	}
	if req.Email == nil || *req.Email == "" {
		errs.Add("email", "This field is required.")
	} else if !validation.IsValidEmail(*req.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	return errs
}

func (h *Handlers) List(c echo.Context) error {
	endUsers, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, endUsers)
}

func (h *Handlers) Create(c echo.Context) error {
	var req endUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validateFull(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	endUser := &EndUser{
		FullName: *req.FullName,
		Email:    *req.Email,
		IsActive: true,
	}
	if req.Phone != nil {
		endUser.Phone = *req.Phone
	}
	if req.IsActive != nil {
		endUser.IsActive = *req.IsActive
	}
	if err := h.repo.Create(endUser); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, endUser)
}

func (h *Handlers) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	endUser, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, endUser)
}

func (h *Handlers) Update(c echo.Context) error {
	return h.update(c, false)
}

func (h *Handlers) PartialUpdate(c echo.Context) error {
	return h.update(c, true)
}

func (h *Handlers) update(c echo.Context, partial bool) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	endUser, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req endUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if !partial {
		if errs := req.validateFull(); errs.HasErrors() {
			return c.JSON(http.StatusBadRequest, errs)
		}
	} else if req.Email != nil && *req.Email != "" && !validation.IsValidEmail(*req.Email) {
		errs := validation.New()
		errs.Add("email", "Enter a valid email address.")
		return c.JSON(http.StatusBadRequest, errs)
	}

	if req.FullName != nil {
		endUser.FullName = *req.FullName
	}
	if req.Email != nil {
		endUser.Email = *req.Email
	}
	if req.Phone != nil {
		endUser.Phone = *req.Phone
	}
	if req.IsActive != nil {
		endUser.IsActive = *req.IsActive
	}

	if err := h.repo.Update(endUser); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, endUser)
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

type profileRequest struct {
	EndUserID    *uint   `json:"end_user"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	FavoriteTeam *string `json:"favorite_team"`
	Bio          *string `json:"bio"`
}

func (h *Handlers) ListProfiles(c echo.Context) error {
	details, err := h.repo.ListDetails()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handlers) CreateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	errs := validation.New()
	if req.EndUserID == nil {
		errs.Add("end_user", "This field is required.")
		return c.JSON(http.StatusBadRequest, errs)
	}
	if _, err := h.repo.FindByID(*req.EndUserID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		errs.Add("end_user", "End user does not exist.")
		return c.JSON(http.StatusBadRequest, errs)
	}

	detail := &EndUserDetail{EndUserID: *req.EndUserID}
	applyProfile(detail, &req)

	if err := h.repo.CreateDetail(detail); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

// Profile endpoints address the detail row by the owning end user's id.
func (h *Handlers) GetProfile(c echo.Context) error {
	endUserID, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	detail, err := h.repo.FindDetailByEndUserID(endUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handlers) UpdateProfile(c echo.Context) error {
	return h.updateProfile(c)
}

func (h *Handlers) PartialUpdateProfile(c echo.Context) error {
	return h.updateProfile(c)
}

func (h *Handlers) updateProfile(c echo.Context) error {
	endUserID, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	detail, err := h.repo.FindDetailByEndUserID(endUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	applyProfile(detail, &req)

	if err := h.repo.UpdateDetail(detail); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handlers) DeleteProfile(c echo.Context) error {
	endUserID, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.repo.DeleteDetailByEndUserID(endUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func applyProfile(detail *EndUserDetail, req *profileRequest) {
	if req.Address != nil {
		detail.Address = *req.Address
	}
	if req.City != nil {
		detail.City = *req.City
	}
	if req.FavoriteTeam != nil {
		detail.FavoriteTeam = *req.FavoriteTeam
	}
	if req.Bio != nil {
		detail.Bio = *req.Bio
	}
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

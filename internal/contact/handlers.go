package contact

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"github.com/yoursport/admin-api/internal/validation"
	"github.com/yoursport/admin-api/server"
	"gorm.io/gorm"
)

// MinMessageLength is the shortest contact message the form accepts.
const MinMessageLength = 100

type Handlers struct {
	repo Repository
}

func NewHandlers(repo Repository) *Handlers {
	return &Handlers{repo: repo}
}

func (h *Handlers) RegisterRoutes(srv *server.Server) {
	srv.Get("/contacts/", h.List)
	srv.Post("/contacts/", h.Create)
	srv.Get("/contacts/:id/", h.Get)
	srv.Put("/contacts/:id/", h.Update)
	srv.Delete("/contacts/:id/", h.Delete)
}

type contactRequest struct {
	FullName string `json:"fullname"`
	Phone    *int64 `json:"phone"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

func (req *contactRequest) validate() validation.FieldErrors {
	errs := validation.New()
	if req.FullName == "" {
		errs.Add("fullname", "Full name is required.")
	}
	if req.Phone == nil || *req.Phone == 0 {
		errs.Add("phone", "Phone number is required.")
	}
	if req.Email == "" {
		errs.Add("email", "Email is required.")
	} else if !validation.IsValidEmail(req.Email) {
		errs.Add("email", "Enter a valid email address.")
	}
	if req.Subject == "" {
		errs.Add("subject", "Subject is required.")
	}
	if req.Message == "" {
		errs.Add("message", "Message is required.")
	} else if utf8.RuneCountInString(req.Message) < MinMessageLength {
		errs.Add("message", fmt.Sprintf("Message must be at least %d characters long.", MinMessageLength))
	}
	return errs
}

func (h *Handlers) List(c echo.Context) error {
	contacts, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *Handlers) Create(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validate(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	contact := &Contact{
		FullName: req.FullName,
		Phone:    *req.Phone,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
	}
	if err := h.repo.Create(contact); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}

func (h *Handlers) Get(c echo.Context) error {
	contact, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

func (h *Handlers) Update(c echo.Context) error {
	contact, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validate(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	contact.FullName = req.FullName
	contact.Phone = *req.Phone
	contact.Email = req.Email
	contact.Subject = req.Subject
	contact.Message = req.Message

	if err := h.repo.Update(contact); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
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

func (h *Handlers) fetch(c echo.Context) (*Contact, error) {
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

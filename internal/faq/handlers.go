package faq

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
	srv.Get("/faqs/", h.List)
	srv.Post("/faqs/", h.Create)
	srv.Get("/faqs/:id/", h.Get)
	srv.Put("/faqs/:id/", h.Update)
	srv.Delete("/faqs/:id/", h.Delete)
}

type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (req *faqRequest) validate() validation.FieldErrors {
	errs := validation.New()
	errs.Required("question", req.Question)
	errs.Required("answer", req.Answer)
	return errs
}

func (h *Handlers) List(c echo.Context) error {
	faqs, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faqs)
}

func (h *Handlers) Create(c echo.Context) error {
	var req faqRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validate(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	faq := &FAQ{Question: req.Question, Answer: req.Answer}
	if err := h.repo.Create(faq); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, faq)
}

func (h *Handlers) Get(c echo.Context) error {
	faq, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, faq)
}

func (h *Handlers) Update(c echo.Context) error {
	faq, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req faqRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validate(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	faq.Question = req.Question
	faq.Answer = req.Answer

	if err := h.repo.Update(faq); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, faq)
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

func (h *Handlers) fetch(c echo.Context) (*FAQ, error) {
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

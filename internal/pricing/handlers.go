package pricing

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
	srv.Get("/pricings/", h.List)
	srv.Post("/pricings/", h.Create)
	srv.Get("/pricings/:id/", h.Get)
	srv.Put("/pricings/:id/", h.Update)
	srv.Delete("/pricings/:id/", h.Delete)

	srv.Get("/price/general/", h.ListGeneral)
	srv.Get("/price/corporate/", h.ListSchoolCorporate)
}

type pricingRequest struct {
	Amount          *int64 `json:"amount"`
	Description     string `json:"description"`
	General         bool   `json:"general"`
	SchoolCorporate bool   `json:"school_corporate"`
}

func (req *pricingRequest) validate() validation.FieldErrors {
	errs := validation.New()
	if req.Amount == nil {
		errs.Add("amount", "This field is required.")
	}
	errs.Required("description", req.Description)
	return errs
}

func (h *Handlers) List(c echo.Context) error {
	pricings, err := h.repo.List()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pricings)
}

func (h *Handlers) ListGeneral(c echo.Context) error {
	pricings, err := h.repo.ListGeneral()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pricings)
}

func (h *Handlers) ListSchoolCorporate(c echo.Context) error {
	pricings, err := h.repo.ListSchoolCorporate()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pricings)
}

func (h *Handlers) Create(c echo.Context) error {
	var req pricingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validate(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	p := &Pricing{
		Amount:          *req.Amount,
		Description:     req.Description,
		General:         req.General,
		SchoolCorporate: req.SchoolCorporate,
	}
	if err := h.repo.Create(p); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handlers) Get(c echo.Context) error {
	p, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handlers) Update(c echo.Context) error {
	p, err := h.fetch(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req pricingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validate(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	p.Amount = *req.Amount
	p.Description = req.Description
	p.General = req.General
	p.SchoolCorporate = req.SchoolCorporate

	if err := h.repo.Update(p); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
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

func (h *Handlers) fetch(c echo.Context) (*Pricing, error) {
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

package team

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
	srv.Get("/create-team/", h.ListTeams)
	srv.Post("/create-team/", h.CreateTeam)
	srv.Put("/create-team/:id/", h.UpdateTeam)
	srv.Patch("/create-team/:id/", h.PartialUpdateTeam)
	srv.Delete("/create-team/:id/", h.DeleteTeam)

	srv.Get("/player-details/", h.ListPlayers)
	srv.Post("/player-details/", h.CreatePlayer)
	srv.Put("/player-details/:id/", h.UpdatePlayer)
	srv.Patch("/player-details/:id/", h.PartialUpdatePlayer)
	srv.Delete("/player-details/:id/", h.DeletePlayer)
}

type teamRequest struct {
	UserID      *uint   `json:"user"`
	Name        *string `json:"name"`
	City        *string `json:"city"`
	FoundedYear *int    `json:"founded_year"`
	Coach       *string `json:"coach"`
	Captain     *string `json:"captain"`
	TeamLogo    *string `json:"team_logo"`
}

func (req *teamRequest) validateFull() validation.FieldErrors {
	errs := validation.New()
	if req.UserID == nil {
		errs.Add("user", "This field is required.")
	}
	requireString(errs, "name", req.Name)
	requireString(errs, "city", req.City)
	if req.FoundedYear == nil {
		errs.Add("founded_year", "This field is required.")
	}
	requireString(errs, "coach", req.Coach)
	requireString(errs, "captain", req.Captain)
	return errs
}

func requireString(errs validation.FieldErrors, field string, value *string) {
	if value == nil || *value == "" {
		errs.Add(field, "This field is required.")
	}
}

func (h *Handlers) ListTeams(c echo.Context) error {
	teams, err := h.repo.ListTeams()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, teams)
}

func (h *Handlers) CreateTeam(c echo.Context) error {
	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validateFull(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	team := &FootballTeam{
		UserID:      *req.UserID,
		Name:        *req.Name,
		City:        *req.City,
		FoundedYear: *req.FoundedYear,
		Coach:       *req.Coach,
		Captain:     *req.Captain,
	}
	if req.TeamLogo != nil {
		team.TeamLogo = *req.TeamLogo
	}
	if err := h.repo.CreateTeam(team); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, team)
}

func (h *Handlers) UpdateTeam(c echo.Context) error {
	return h.updateTeam(c, false)
}

func (h *Handlers) PartialUpdateTeam(c echo.Context) error {
	return h.updateTeam(c, true)
}

func (h *Handlers) updateTeam(c echo.Context, partial bool) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	team, err := h.repo.FindTeamByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req teamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if !partial {
		if errs := req.validateFull(); errs.HasErrors() {
			return c.JSON(http.StatusBadRequest, errs)
		}
	} else {
		errs := validation.New()
		if req.Name != nil && *req.Name == "" {
			errs.Add("name", "This field is required.")
		}
		if req.City != nil && *req.City == "" {
			errs.Add("city", "This field is required.")
		}
		if req.Coach != nil && *req.Coach == "" {
			errs.Add("coach", "This field is required.")
		}
		if req.Captain != nil && *req.Captain == "" {
			errs.Add("captain", "This field is required.")
		}
		if errs.HasErrors() {
			return c.JSON(http.StatusBadRequest, errs)
		}
	}

	if req.UserID != nil {
		team.UserID = *req.UserID
	}
	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.City != nil {
		team.City = *req.City
	}
	if req.FoundedYear != nil {
		team.FoundedYear = *req.FoundedYear
	}
	if req.Coach != nil {
		team.Coach = *req.Coach
	}
	if req.Captain != nil {
		team.Captain = *req.Captain
	}
	if req.TeamLogo != nil {
		team.TeamLogo = *req.TeamLogo
	}

	if err := h.repo.UpdateTeam(team); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, team)
}

func (h *Handlers) DeleteTeam(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.repo.DeleteTeam(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type playerRequest struct {
	FootballTeamID *uint   `json:"football_team"`
	Name           *string `json:"name"`
	Position       *string `json:"position"`
	NoGoals        *int64  `json:"no_goals"`
	NoMatches      *int64  `json:"no_matches"`
}

func (req *playerRequest) validateFull() validation.FieldErrors {
	errs := validation.New()
	if req.FootballTeamID == nil {
		errs.Add("football_team", "This field is required.")
	}
	requireString(errs, "name", req.Name)
	requireString(errs, "position", req.Position)
	return errs
}

func (h *Handlers) ListPlayers(c echo.Context) error {
	players, err := h.repo.ListPlayers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, players)
}

func (h *Handlers) CreatePlayer(c echo.Context) error {
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if errs := req.validateFull(); errs.HasErrors() {
		return c.JSON(http.StatusBadRequest, errs)
	}

	player := &PlayerDetail{
		FootballTeamID: *req.FootballTeamID,
		Name:           *req.Name,
		Position:       *req.Position,
	}
	if req.NoGoals != nil {
		player.NoGoals = *req.NoGoals
	}
	if req.NoMatches != nil {
		player.NoMatches = *req.NoMatches
	}
	if err := h.repo.CreatePlayer(player); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, player)
}

func (h *Handlers) UpdatePlayer(c echo.Context) error {
	return h.updatePlayer(c, false)
}

func (h *Handlers) PartialUpdatePlayer(c echo.Context) error {
	return h.updatePlayer(c, true)
}

func (h *Handlers) updatePlayer(c echo.Context, partial bool) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	player, err := h.repo.FindPlayerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}

	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request body"})
	}

	if !partial {
		if errs := req.validateFull(); errs.HasErrors() {
			return c.JSON(http.StatusBadRequest, errs)
		}
	}

	if req.FootballTeamID != nil {
		player.FootballTeamID = *req.FootballTeamID
	}
	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.NoGoals != nil {
		player.NoGoals = *req.NoGoals
	}
	if req.NoMatches != nil {
		player.NoMatches = *req.NoMatches
	}

	if err := h.repo.UpdatePlayer(player); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, player)
}

func (h *Handlers) DeletePlayer(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return notFound(c)
	}
	if err := h.repo.DeletePlayer(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
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

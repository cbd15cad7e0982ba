package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"arena/internal/delivery/api/middleware"
	"arena/internal/delivery/api/response"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/errors"
	"arena/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeroHandlerParams holds dependencies for HeroHandler, injected by Fx.
type HeroHandlerParams struct {
	fx.In

	HeroUC usecase.HeroUsecase
	Logger *slog.Logger
}

// HeroHandler serves the hero resources.
type HeroHandler struct {
	heroUC usecase.HeroUsecase
	logger *slog.Logger
}

// NewHeroHandler is the constructor for HeroHandler.
func NewHeroHandler(params HeroHandlerParams) *HeroHandler {
	return &HeroHandler{
		heroUC: params.HeroUC,
		logger: params.Logger,
	}
}

// HeroRequest is the body for create and rename.
type HeroRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// HeroResponse is the public view of a hero.
type HeroResponse struct {
	ID     entity.HeroID `json:"id"`
	UserID int64         `json:"user_id"`
	Name   string        `json:"name"`
	Wins   int           `json:"wins"`
	Losses int           `json:"losses"`
}

// CreateHeroResponse carries the new hero and the token that now covers it.
type CreateHeroResponse struct {
	Hero  *HeroResponse  `json:"hero"`
	Token *TokenResponse `json:"token"`
}

func newHeroResponse(hero *entity.Hero) *HeroResponse {
	return &HeroResponse{
		ID:     hero.ID,
		UserID: hero.UserID,
		Name:   hero.Name,
		Wins:   hero.Wins,
		Losses: hero.Losses,
	}
}

// GetHero is public.
func (h *HeroHandler) GetHero(c echo.Context) error {
	heroID, err := parseHeroID(c)
	if err != nil {
		return err
	}

	hero, err := h.heroUC.GetHero(c.Request().Context(), heroID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newHeroResponse(hero))
}

// CreateHero requires a bearer token.
func (h *HeroHandler) CreateHero(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("claims missing from context")
	}

	req, err := bindHero(c)
	if err != nil {
		return err
	}

	out, err := h.heroUC.CreateHero(c.Request().Context(), claims, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, &CreateHeroResponse{
		Hero:  newHeroResponse(out.Hero),
		Token: newTokenResponse(out.Token),
	})
}

// RenameHero requires a bearer token whose claims cover the hero.
func (h *HeroHandler) RenameHero(c echo.Context) error {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		return domainerrors.ErrInvalidToken.WrapMessage("claims missing from context")
	}

	heroID, err := parseHeroID(c)
	if err != nil {
		return err
	}

	req, err := bindHero(c)
	if err != nil {
		return err
	}

	hero, err := h.heroUC.RenameHero(c.Request().Context(), claims, heroID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newHeroResponse(hero))
}

func parseHeroID(c echo.Context) (entity.HeroID, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("invalid hero id")
	}

	return id, nil
}

func bindHero(c echo.Context) (*HeroRequest, error) {
	var req HeroRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, errors.WithStack(err)
	}

	return &req, nil
}

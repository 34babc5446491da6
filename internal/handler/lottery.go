package handler

import (
	"net/http"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
)

// GamesResponse lists the supported games in display order
type GamesResponse struct {
	Games []domain.GameConfig `json:"games"`
}

// GenerateNumbersRequest selects the game to draw for
type GenerateNumbersRequest struct {
	GameType string `json:"game_type" validate:"required,gametype"`
}

// GenerateNumbersResponse carries a fresh draw and its display form
type GenerateNumbersResponse struct {
	GameType domain.GameType `json:"game_type"`
	GameName string          `json:"game_name"`
	domain.DrawResult
	Formatted string `json:"formatted"`
}

// HandleGetGames returns the static game table
// @Summary List games
// @Description Returns every supported game with its drawing rules and ticket price
// @Tags lottery
// @Produce json
// @Success 200 {object} GamesResponse
// @Security ApiKeyAuth
// @Router /api/v1/games [get]
func HandleGetGames(svc lottery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, GamesResponse{Games: svc.GetGames(r.Context())})
	}
}

// HandleGenerateNumbers draws random numbers for a game
// @Summary Generate numbers
// @Description Draws unique sorted main numbers plus the special ball when the game has one
// @Tags lottery
// @Accept json
// @Produce json
// @Param request body GenerateNumbersRequest true "Game selection"
// @Success 200 {object} GenerateNumbersResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/lottery/generate [post]
func HandleGenerateNumbers(svc lottery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GenerateNumbersRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Generate numbers"); err != nil {
			return
		}

		gameType := domain.GameType(req.GameType)
		draw, err := svc.GenerateNumbers(r.Context(), gameType)
		if err != nil {
			respondServiceError(w, r, ErrMsgGenerateFailed, err)
			return
		}

		formatted := domain.FormatNumbers(*draw)
		log.Info(LogMsgNumbersGenerated, logger.AttrKeyGameType, gameType, "numbers", formatted)

		respondJSON(w, http.StatusOK, GenerateNumbersResponse{
			GameType:   gameType,
			GameName:   lottery.GameName(gameType),
			DrawResult: *draw,
			Formatted:  formatted,
		})
	}
}

package handler

import (
	"net/http"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/logger"
	"github.com/osse101/LuckyGen_Go/internal/lottery"
	"github.com/osse101/LuckyGen_Go/internal/stats"
)

// SummaryResponse is the pattern summary plus analysis-page extras
type SummaryResponse struct {
	domain.PatternSummary
	FavoriteGameName string  `json:"favorite_game_name"`
	ReturnPercent    float64 `json:"return_percent"`
}

// HandleGetSummary computes the pattern summary over the whole encounter log
// @Summary Pattern summary
// @Description Totals, win rate, hot numbers, favorite game and weekly spend, recomputed on every call
// @Tags stats
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/stats/summary [get]
func HandleGetSummary(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.GetSummary(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSummaryFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgSummaryServed, "encounters", summary.TotalEncounters)

		respondJSON(w, http.StatusOK, SummaryResponse{
			PatternSummary:   *summary,
			FavoriteGameName: lottery.GameName(summary.FavoriteGame),
			ReturnPercent:    stats.ReturnPercent(*summary),
		})
	}
}

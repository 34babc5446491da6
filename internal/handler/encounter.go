package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LuckyGen_Go/internal/domain"
	"github.com/osse101/LuckyGen_Go/internal/encounter"
	"github.com/osse101/LuckyGen_Go/internal/logger"
)

// EncounterHandler handles encounter log HTTP requests
type EncounterHandler struct {
	service encounter.Service
}

// NewEncounterHandler creates a new encounter handler
func NewEncounterHandler(service encounter.Service) *EncounterHandler {
	return &EncounterHandler{
		service: service,
	}
}

// RecordEncounterRequest is one played ticket.
// Cost defaults to the game's ticket price and date to now.
type RecordEncounterRequest struct {
	Date          string   `json:"date,omitempty" validate:"omitempty,playdate"`
	GameType      string   `json:"game_type" validate:"required,gametype"`
	MainNumbers   []int    `json:"main_numbers" validate:"required,min=1,max=10"`
	SpecialNumber *int     `json:"special_number,omitempty"`
	Cost          *float64 `json:"cost,omitempty"`
	Result        string   `json:"result,omitempty" validate:"omitempty,matchresult"`
	WinAmount     *float64 `json:"win_amount,omitempty"`
	Notes         string   `json:"notes,omitempty" validate:"max=500"`
}

// EncounterListResponse is the encounter log with running totals
type EncounterListResponse struct {
	Encounters    []domain.Encounter `json:"encounters"`
	Count         int                `json:"count"`
	TotalSpent    float64            `json:"total_spent"`
	TotalWinnings float64            `json:"total_winnings"`
}

// HandleListEncounters returns the encounter log, optionally for one game
// @Summary List encounters
// @Description Returns every recorded play in recording order with spend and winnings totals
// @Tags encounters
// @Produce json
// @Param game query string false "Only this game type"
// @Success 200 {object} EncounterListResponse
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/encounters [get]
func (h *EncounterHandler) HandleListEncounters(w http.ResponseWriter, r *http.Request) {
	game, err := ParseGameQuery(r)
	if err != nil {
		respondServiceError(w, r, ErrMsgListEncountersFailed, err)
		return
	}

	encounters, err := h.service.ListEncounters(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListEncountersFailed, err)
		return
	}

	resp := EncounterListResponse{Encounters: domain.FilterByGame(encounters, game)}
	for _, e := range resp.Encounters {
		resp.TotalSpent += e.Cost
		resp.TotalWinnings += e.Winnings()
	}
	if resp.Encounters == nil {
		resp.Encounters = []domain.Encounter{}
	}
	resp.Count = len(resp.Encounters)

	respondJSON(w, http.StatusOK, resp)
}

// HandleGetEncounter returns a single encounter
// @Summary Get encounter
// @Tags encounters
// @Produce json
// @Param id path string true "Encounter ID"
// @Success 200 {object} domain.Encounter
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/encounters/{id} [get]
func (h *EncounterHandler) HandleGetEncounter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingEncounterID)
		return
	}

	e, err := h.service.GetEncounter(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetEncounterFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, e)
}

// HandleRecordEncounter appends a play to the log
// @Summary Record encounter
// @Description Logs a played ticket; amounts are stored as given
// @Tags encounters
// @Accept json
// @Produce json
// @Param request body RecordEncounterRequest true "Played ticket"
// @Success 201 {object} domain.Encounter
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/encounters [post]
func (h *EncounterHandler) HandleRecordEncounter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RecordEncounterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record encounter"); err != nil {
		return
	}

	LogRequestFields(log, logger.AttrKeyGameType, req.GameType, "numbers", len(req.MainNumbers), "has_result", req.Result != "")

	newEncounter, err := req.toDomain()
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
		return
	}

	e, err := h.service.RecordEncounter(r.Context(), newEncounter)
	if err != nil {
		respondServiceError(w, r, ErrMsgRecordEncounterFailed, err)
		return
	}

	log.Info(LogMsgEncounterRecorded, logger.AttrKeyEncounterID, e.ID, logger.AttrKeyGameType, e.GameType)
	respondJSON(w, http.StatusCreated, e)
}

func (req RecordEncounterRequest) toDomain() (domain.NewEncounter, error) {
	out := domain.NewEncounter{
		GameType: domain.GameType(req.GameType),
		Numbers: domain.DrawResult{
			MainNumbers:   req.MainNumbers,
			SpecialNumber: req.SpecialNumber,
		},
		Cost:      req.Cost,
		WinAmount: req.WinAmount,
		Notes:     req.Notes,
	}

	if req.Result != "" {
		result := domain.MatchResult(req.Result)
		out.Result = &result
	}

	if req.Date != "" {
		date, err := parsePlayDate(req.Date)
		if err != nil {
			return domain.NewEncounter{}, err
		}
		out.Date = date.UTC()
	}

	return out, nil
}

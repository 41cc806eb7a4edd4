package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
	"github.com/heartmarshall/pokeranch-backend/internal/service/trail"
)

type trailService interface {
	Dispatch(ctx context.Context, input trail.DispatchInput) (*trail.DispatchResult, error)
	Collect(ctx context.Context, creatureID uuid.UUID) (*trail.CollectResult, error)
	VisibleLog(ctx context.Context, creatureID uuid.UUID) (*trail.LogResult, error)
	GetTrail(ctx context.Context, slug string) (*domain.Trail, error)
	ListTrails(ctx context.Context) ([]domain.Trail, error)
	CreateTrail(ctx context.Context, input trail.CreateTrailInput) (*domain.Trail, error)
	EditTrail(ctx context.Context, input trail.EditTrailInput) (*domain.Trail, error)
	DeleteTrail(ctx context.Context, slug string) (*domain.Trail, error)
}

// TrailHandler serves the trail REST endpoints.
type TrailHandler struct {
	svc trailService
	log *slog.Logger
}

// NewTrailHandler creates a TrailHandler.
func NewTrailHandler(svc trailService, logger *slog.Logger) *TrailHandler {
	return &TrailHandler{
		svc: svc,
		log: logger.With("handler", "trail"),
	}
}

// ---------------------------------------------------------------------------
// Request/Response types
// ---------------------------------------------------------------------------

type dispatchRequest struct {
	Title     string `json:"title"`
	PokemonID string `json:"pokemonId"`
}

type creatureRequest struct {
	PokemonID string `json:"pokemonId"`
}

type createTrailRequest struct {
	Title       string   `json:"title"`
	BuffedTypes []string `json:"buffedTypes"`
	Length      int64    `json:"length"`
}

type editTrailRequest struct {
	BuffedTypes *[]string `json:"buffedTypes"`
	Length      *int64    `json:"length"`
}

type assignmentResponse struct {
	Title      string    `json:"title"`
	StartedAt  time.Time `json:"startedAt"`
	FinishesAt time.Time `json:"finishesAt"`
	Length     int64     `json:"length"`
}

type dispatchResponse struct {
	Message          string              `json:"message"`
	CurrentlyOnTrail bool                `json:"currentlyOnTrail"`
	TimeLeft         int64               `json:"timeLeft"`
	Sprite           string              `json:"sprite,omitempty"`
	Trail            *assignmentResponse `json:"trail,omitempty"`
}

type collectResponse struct {
	Message          string `json:"message"`
	CurrentlyOnTrail bool   `json:"currentlyOnTrail"`
	TimeLeft         int64  `json:"timeLeft,omitempty"`
	TrailTitle       string `json:"trailTitle,omitempty"`
	Balance          *int64 `json:"balance,omitempty"`
	EggVouchers      *int   `json:"eggVouchers,omitempty"`
	Happiness        *int   `json:"happiness,omitempty"`
	RunningBalance   *int64 `json:"runningBalance,omitempty"`
	RunningVouchers  *int   `json:"runningVouchers,omitempty"`
	RunningHappiness *int   `json:"runningHappiness,omitempty"`
	Sprite           string `json:"sprite,omitempty"`
}

type stateResponse struct {
	Message          string `json:"message"`
	CurrentlyOnTrail bool   `json:"currentlyOnTrail"`
}

type trailResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	BuffedTypes []string  `json:"buffedTypes"`
	Length      int64     `json:"length"`
	Roster      []string  `json:"roster"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type trailEnvelope struct {
	Message string `json:"message"`
	Result  any    `json:"result"`
}

// ---------------------------------------------------------------------------
// Player endpoints
// ---------------------------------------------------------------------------

// Dispatch sends a creature on a trail.
// POST /trail/simulate
func (h *TrailHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	creatureID, err := parsePokemonID(req.PokemonID)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.svc.Dispatch(r.Context(), trail.DispatchInput{
		Title:      req.Title,
		CreatureID: creatureID,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := dispatchResponse{
		Message:          result.Message,
		CurrentlyOnTrail: true,
		TimeLeft:         result.TimeLeft.Milliseconds(),
		Sprite:           result.Sprite,
	}
	if result.Status == trail.DispatchAlreadyOnTrail {
		writeJSON(w, http.StatusConflict, resp)
		return
	}

	if a := result.Trail; a != nil {
		resp.Trail = &assignmentResponse{
			Title:      a.TrailTitle,
			StartedAt:  a.StartedAt,
			FinishesAt: a.FinishesAt,
			Length:     a.Duration.Milliseconds(),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Collect settles a finished trail.
// POST /trail/finish
func (h *TrailHandler) Collect(w http.ResponseWriter, r *http.Request) {
	var req creatureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	creatureID, err := parsePokemonID(req.PokemonID)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.svc.Collect(r.Context(), creatureID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	switch result.Status {
	case trail.CollectStillOnTrail:
		writeJSON(w, http.StatusBadRequest, collectResponse{
			Message:          result.Message,
			CurrentlyOnTrail: true,
			TimeLeft:         result.TimeLeft.Milliseconds(),
		})
	case trail.CollectNothingToCollect:
		writeJSON(w, http.StatusBadRequest, stateResponse{Message: result.Message})
	default:
		writeJSON(w, http.StatusOK, collectResponse{
			Message:          result.Message,
			TrailTitle:       result.TrailTitle,
			Balance:          &result.Balance,
			EggVouchers:      &result.Vouchers,
			Happiness:        &result.Happiness,
			RunningBalance:   &result.Running.Currency,
			RunningVouchers:  &result.Running.Vouchers,
			RunningHappiness: &result.Running.Happiness,
			Sprite:           result.Sprite,
		})
	}
}

// Log returns the trail events that have already happened.
// GET /trail/log?pokemonId=...
//
// The creature ID may also be sent as a JSON body.
func (h *TrailHandler) Log(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("pokemonId")
	if raw == "" {
		var req creatureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		raw = req.PokemonID
	}

	creatureID, err := parsePokemonID(raw)
	if err != nil {
		writeValidationError(w, err)
		return
	}

	result, err := h.svc.VisibleLog(r.Context(), creatureID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	switch {
	case !result.OnTrail:
		writeJSON(w, http.StatusBadRequest, stateResponse{Message: result.Message})
	case len(result.Entries) == 0:
		writeJSON(w, http.StatusOK, stateResponse{Message: result.Message, CurrentlyOnTrail: true})
	default:
		entries := make([]string, 0, len(result.Entries))
		for _, e := range result.Entries {
			entries = append(entries, e.String())
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// ---------------------------------------------------------------------------
// Trail definitions
// ---------------------------------------------------------------------------

// List returns every trail definition.
// GET /trail
func (h *TrailHandler) List(w http.ResponseWriter, r *http.Request) {
	trails, err := h.svc.ListTrails(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]trailResponse, 0, len(trails))
	for i := range trails {
		out = append(out, toTrailResponse(&trails[i]))
	}
	writeJSON(w, http.StatusOK, trailEnvelope{Message: "Get Trails", Result: out})
}

// Get returns one trail definition.
// GET /trail/{title}
func (h *TrailHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetTrail(r.Context(), r.PathValue("title"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trailEnvelope{Message: "Get Trail", Result: toTrailResponse(t)})
}

// Create adds a trail definition. Admin only.
// POST /trail
func (h *TrailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTrailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.CreateTrail(r.Context(), trail.CreateTrailInput{
		Title:        req.Title,
		BuffedTypes:  req.BuffedTypes,
		BaseDuration: time.Duration(req.Length) * time.Millisecond,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, trailEnvelope{Message: "Trail created", Result: toTrailResponse(t)})
}

// Edit changes the buffed types or length of a trail. Admin only.
// PATCH /trail/{title}
func (h *TrailHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req editTrailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := trail.EditTrailInput{
		Slug:        r.PathValue("title"),
		BuffedTypes: req.BuffedTypes,
	}
	if req.Length != nil {
		d := time.Duration(*req.Length) * time.Millisecond
		input.BaseDuration = &d
	}

	t, err := h.svc.EditTrail(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trailEnvelope{Message: "Trail edited", Result: toTrailResponse(t)})
}

// Delete removes a trail definition. Admin only.
// DELETE /trail/{title}
func (h *TrailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.DeleteTrail(r.Context(), r.PathValue("title"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, trailEnvelope{Message: "Trail deleted", Result: toTrailResponse(t)})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (h *TrailHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidationError(w, err)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage(err))
	case errors.Is(err, domain.ErrEggNotHatched):
		writeError(w, http.StatusUnauthorized, "Cannot send eggs on trails")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotOwned):
		writeError(w, http.StatusForbidden, "Pokemon does not belong to user")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "concurrent update, try again")
	default:
		h.log.ErrorContext(r.Context(), "trail request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if !errors.As(err, &nf) {
		return "not found"
	}
	switch nf.Entity {
	case domain.EntityTrail:
		return "Trail not found"
	case domain.EntityCreature:
		return "Pokemon not found"
	case domain.EntityUser:
		return "User not found"
	default:
		return "not found"
	}
}

func parsePokemonID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, domain.NewValidationError("pokemonId", "required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("pokemonId", "invalid id")
	}
	return id, nil
}

func toTrailResponse(t *domain.Trail) trailResponse {
	types := make([]string, 0, len(t.BuffedTypes))
	for _, ct := range t.BuffedTypes {
		types = append(types, string(ct))
	}
	roster := make([]string, 0, len(t.Roster))
	for _, id := range t.Roster {
		roster = append(roster, id.String())
	}

	return trailResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Slug:        t.Slug(),
		BuffedTypes: types,
		Length:      t.BaseDuration.Milliseconds(),
		Roster:      roster,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

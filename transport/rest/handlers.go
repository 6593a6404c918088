package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
	"github.com/rocketscienceinc/caro-backend/internal/entity"
	"github.com/rocketscienceinc/caro-backend/internal/pkg"
)

const sessionCookie = "user_session"

type playerKey struct{}

type matchUseCase interface {
	StartBotMatch(ctx context.Context, playerID string) (*entity.Match, error)
	StartPvPMatch(ctx context.Context, challengerID, challengedID string) (*entity.Match, error)
	MakeTurn(ctx context.Context, key, playerID string, row, col int) (*entity.Match, error)
	GetMatch(ctx context.Context, key string) (*entity.Match, error)
	GetMatchByPlayer(ctx context.Context, playerID string) (*entity.Match, error)
	Reset(ctx context.Context, key, playerID string) error
}

type turnRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type challengeRequest struct {
	Opponent string `json:"opponent"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type matchHandler struct {
	logger  *slog.Logger
	matches matchUseCase
}

func newMatchHandler(logger *slog.Logger, matches matchUseCase) *matchHandler {
	return &matchHandler{
		logger:  logger.With("component", "rest"),
		matches: matches,
	}
}

// session - identifies the player by the session cookie, issuing a new one when missing.
func (that *matchHandler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			cookie = &http.Cookie{
				Name:     sessionCookie,
				Value:    pkg.GenerateNewSessionID(),
				Expires:  time.Now().Add(24 * time.Hour),
				Path:     "/",
				HttpOnly: true,
			}
			http.SetCookie(w, cookie)
			that.logger.Debug("session cookie not found, new one created")
		}

		ctx := context.WithValue(r.Context(), playerKey{}, cookie.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (that *matchHandler) current(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.GetMatchByPlayer(r.Context(), playerID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, match)
}

func (that *matchHandler) startBot(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.StartBotMatch(r.Context(), playerID(r))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, match)
}

func (that *matchHandler) startPvP(w http.ResponseWriter, r *http.Request) {
	var payload challengeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Opponent == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}

	match, err := that.matches.StartPvPMatch(r.Context(), playerID(r), payload.Opponent)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, match)
}

func (that *matchHandler) get(w http.ResponseWriter, r *http.Request) {
	match, err := that.matches.GetMatch(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, match)
}

func (that *matchHandler) makeTurn(w http.ResponseWriter, r *http.Request) {
	var payload turnRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Row == nil || payload.Col == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payload"})
		return
	}

	match, err := that.matches.MakeTurn(r.Context(), chi.URLParam(r, "key"), playerID(r), *payload.Row, *payload.Col)
	if err != nil {
		that.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, match)
}

func (that *matchHandler) reset(w http.ResponseWriter, r *http.Request) {
	if err := that.matches.Reset(r.Context(), chi.URLParam(r, "key"), playerID(r)); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *matchHandler) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrSelfChallenge):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrNotParticipant):
		return http.StatusForbidden
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished),
		errors.Is(err, apperror.ErrGameAlreadyExists),
		errors.Is(err, apperror.ErrMatchBusy):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func playerID(r *http.Request) string {
	id, _ := r.Context().Value(playerKey{}).(string)
	return id
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

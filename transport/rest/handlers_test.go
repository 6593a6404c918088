package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
	"github.com/rocketscienceinc/caro-backend/internal/caro"
	"github.com/rocketscienceinc/caro-backend/internal/entity"
	mockedRest "github.com/rocketscienceinc/caro-backend/mocks/rest"
)

func newTestServer(matches matchUseCase) http.Handler {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), matches).Handler()
}

func newRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "alice"})
	return req
}

func testMatch(key string) *entity.Match {
	return entity.NewMatch(key, caro.NewGame(caro.DefaultSettings(), "alice", entity.BotPlayerID, false))
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestServer(mockedRest.NewMockmatchUseCase(t)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestMatchHandler_StartBot(t *testing.T) {
	t.Run("Starts a match for the session player", func(t *testing.T) {
		// Given: a player with a session cookie
		matches := mockedRest.NewMockmatchUseCase(t)
		matches.EXPECT().StartBotMatch(mock.Anything, "alice").Return(testMatch("bot_alice"), nil)
		rec := httptest.NewRecorder()

		// When: a bot match is requested
		newTestServer(matches).ServeHTTP(rec, newRequest(http.MethodPost, "/matches/bot", ""))

		// Then: the match view is returned
		require.Equal(t, http.StatusCreated, rec.Code)

		var got entity.Match
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "bot_alice", got.Key)
		assert.Equal(t, "X", got.Turn)
		assert.Len(t, got.Board, 3)
	})

	t.Run("Issues a session cookie when missing", func(t *testing.T) {
		matches := mockedRest.NewMockmatchUseCase(t)
		matches.EXPECT().StartBotMatch(mock.Anything, mock.Anything).Return(testMatch("bot_x"), nil)
		rec := httptest.NewRecorder()

		newTestServer(matches).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/matches/bot", nil))

		require.Equal(t, http.StatusCreated, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookie, cookies[0].Name)
		matches.AssertCalled(t, "StartBotMatch", mock.Anything, cookies[0].Value)
	})
}

func TestMatchHandler_StartPvP(t *testing.T) {
	t.Run("Challenges the opponent", func(t *testing.T) {
		matches := mockedRest.NewMockmatchUseCase(t)
		matches.EXPECT().StartPvPMatch(mock.Anything, "alice", "bob").Return(testMatch("12345"), nil)
		rec := httptest.NewRecorder()

		newTestServer(matches).ServeHTTP(rec, newRequest(http.MethodPost, "/matches/pvp", `{"opponent":"bob"}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Bad payload", func(t *testing.T) {
		matches := mockedRest.NewMockmatchUseCase(t)
		rec := httptest.NewRecorder()

		newTestServer(matches).ServeHTTP(rec, newRequest(http.MethodPost, "/matches/pvp", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		matches.AssertNotCalled(t, "StartPvPMatch", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMatchHandler_MakeTurn(t *testing.T) {
	t.Run("Plays the cell", func(t *testing.T) {
		matches := mockedRest.NewMockmatchUseCase(t)
		matches.EXPECT().MakeTurn(mock.Anything, "bot_alice", "alice", 0, 2).Return(testMatch("bot_alice"), nil)
		rec := httptest.NewRecorder()

		newTestServer(matches).ServeHTTP(rec, newRequest(http.MethodPost, "/matches/bot_alice/turns", `{"row":0,"col":2}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		matches.AssertExpectations(t)
	})

	t.Run("Missing coordinates", func(t *testing.T) {
		matches := mockedRest.NewMockmatchUseCase(t)
		rec := httptest.NewRecorder()

		newTestServer(matches).ServeHTTP(rec, newRequest(http.MethodPost, "/matches/bot_alice/turns", `{"row":0}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	tests := []struct {
		err    error
		status int
	}{
		{err: apperror.ErrGameNotFound, status: http.StatusNotFound},
		{err: fmt.Errorf("%w: (3, 0)", apperror.ErrInvalidCell), status: http.StatusBadRequest},
		{err: apperror.ErrNotParticipant, status: http.StatusForbidden},
		{err: fmt.Errorf("%w: (0, 0)", apperror.ErrCellOccupied), status: http.StatusConflict},
		{err: apperror.ErrNotYourTurn, status: http.StatusConflict},
		{err: apperror.ErrGameFinished, status: http.StatusConflict},
		{err: apperror.ErrMatchBusy, status: http.StatusConflict},
		{err: io.ErrUnexpectedEOF, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			matches := mockedRest.NewMockmatchUseCase(t)
			matches.EXPECT().MakeTurn(mock.Anything, "1", "alice", 0, 0).Return(nil, tt.err)
			rec := httptest.NewRecorder()

			newTestServer(matches).ServeHTTP(rec, newRequest(http.MethodPost, "/matches/1/turns", `{"row":0,"col":0}`))

			assert.Equal(t, tt.status, rec.Code)

			var got errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.NotEmpty(t, got.Error)
		})
	}
}

func TestMatchHandler_GetAndReset(t *testing.T) {
	matches := mockedRest.NewMockmatchUseCase(t)
	matches.EXPECT().GetMatch(mock.Anything, "1").Return(testMatch("1"), nil)
	matches.EXPECT().GetMatchByPlayer(mock.Anything, "alice").Return(nil, apperror.ErrGameNotFound)
	matches.EXPECT().Reset(mock.Anything, "1", "alice").Return(nil)
	server := newTestServer(matches)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, newRequest(http.MethodGet, "/matches/1", ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, newRequest(http.MethodGet, "/matches", ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	server.ServeHTTP(rec, newRequest(http.MethodDelete, "/matches/1", ""))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

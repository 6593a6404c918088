package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/caro-backend/internal/apperror"
	"github.com/rocketscienceinc/caro-backend/internal/caro"
	"github.com/rocketscienceinc/caro-backend/internal/entity"
	"github.com/rocketscienceinc/caro-backend/internal/pkg"
)

const (
	botMatchPrefix   = "bot_"
	playerLockPrefix = "player:"
)

// BotPlayer answers for O in a match against the computer.
type BotPlayer interface {
	MakeTurn(game *caro.Game) (caro.Cell, error)
}

type playerService interface {
	ActiveMatch(ctx context.Context, playerID string) (string, error)
	JoinMatch(ctx context.Context, playerID, matchKey string, ttl time.Duration) error
	LeaveMatch(ctx context.Context, playerID string) error
}

type lockRepo interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)
	Release(ctx context.Context, key, token string) error
}

type Timings struct {
	TurnTimeout       time.Duration
	FinishedRetention time.Duration
	LockTTL           time.Duration
	SweepInterval     time.Duration
}

type session struct {
	mu sync.Mutex

	key  string
	game *caro.Game
	bot  BotPlayer

	touchedAt  time.Time
	finishedAt time.Time
}

// MatchManager owns the running matches of this process.
type MatchManager struct {
	logger   *slog.Logger
	settings caro.Settings
	timings  Timings

	players playerService
	locks   lockRepo
	newBot  func() BotPlayer

	rndMu sync.Mutex
	rnd   *rand.Rand

	now    func() time.Time
	newKey func() string

	mu      sync.RWMutex
	matches map[string]*session
}

func NewMatchManager(
	logger *slog.Logger,
	settings caro.Settings,
	timings Timings,
	players playerService,
	locks lockRepo,
	newBot func() BotPlayer,
	src rand.Source,
) *MatchManager {
	return &MatchManager{
		logger:   logger,
		settings: settings,
		timings:  timings,

		players: players,
		locks:   locks,
		newBot:  newBot,

		rnd:    rand.New(src),
		now:    time.Now,
		newKey: pkg.GenerateMatchKey,

		matches: make(map[string]*session),
	}
}

// StartBotMatch - starts a match against the computer. The human plays X.
func (that *MatchManager) StartBotMatch(ctx context.Context, playerID string) (*entity.Match, error) {
	if playerID == "" || playerID == entity.BotPlayerID {
		return nil, apperror.ErrNotParticipant
	}

	key := botMatchPrefix + playerID

	var match *entity.Match
	err := that.withLocks(ctx, that.startLockKeys(key, playerID), func() error {
		if err := that.ensureFree(ctx, playerID); err != nil {
			return err
		}

		game := caro.NewGame(that.settings, playerID, entity.BotPlayerID, false)
		s := &session{key: key, game: game, bot: that.newBot(), touchedAt: that.now()}

		if that.firstMover() == caro.O {
			if err := game.SetTurn(caro.O); err != nil {
				return fmt.Errorf("failed to hand the first turn to the bot: %w", err)
			}

			if _, err := s.bot.MakeTurn(game); err != nil {
				return fmt.Errorf("bot failed to open: %w", err)
			}
		}

		if err := that.players.JoinMatch(ctx, playerID, key, that.bindingTTL()); err != nil {
			return fmt.Errorf("failed to bind player: %w", err)
		}

		that.register(s)
		match = entity.NewMatch(key, game)

		return nil
	})
	if err != nil {
		return nil, err
	}

	that.logger.Info("bot match started", "key", key, "player", playerID, "first", match.Turn)

	return match, nil
}

// StartPvPMatch - challenged plays X and moves first, challenger plays O.
func (that *MatchManager) StartPvPMatch(ctx context.Context, challengerID, challengedID string) (*entity.Match, error) {
	if challengerID == "" || challengedID == "" {
		return nil, apperror.ErrNotParticipant
	}

	if challengerID == challengedID {
		return nil, apperror.ErrSelfChallenge
	}

	if challengedID == entity.BotPlayerID {
		return that.StartBotMatch(ctx, challengerID)
	}

	key := that.newKey()
	if key == "" {
		return nil, errors.New("failed to generate match key")
	}

	var match *entity.Match
	err := that.withLocks(ctx, that.startLockKeys(key, challengerID, challengedID), func() error {
		if that.lookup(key) != nil {
			return apperror.ErrGameAlreadyExists
		}

		for _, id := range []string{challengerID, challengedID} {
			if err := that.ensureFree(ctx, id); err != nil {
				return fmt.Errorf("player %s: %w", id, err)
			}
		}

		game := caro.NewGame(that.settings, challengedID, challengerID, true)

		for _, id := range []string{challengedID, challengerID} {
			if err := that.players.JoinMatch(ctx, id, key, that.bindingTTL()); err != nil {
				that.release(ctx, game)
				return fmt.Errorf("failed to bind player: %w", err)
			}
		}

		that.register(&session{key: key, game: game, touchedAt: that.now()})
		match = entity.NewMatch(key, game)

		return nil
	})
	if err != nil {
		return nil, err
	}

	that.logger.Info("pvp match started", "key", key, "x", challengedID, "o", challengerID)

	return match, nil
}

// MakeTurn - plays playerID's mark at (row, col). In a bot match the bot answers before returning.
func (that *MatchManager) MakeTurn(ctx context.Context, key, playerID string, row, col int) (*entity.Match, error) {
	var match *entity.Match

	err := that.withMatch(ctx, key, func(s *session) error {
		game := s.game

		if game.IsFinished() {
			return apperror.ErrGameFinished
		}

		mark, err := that.participant(s, playerID)
		if err != nil {
			return err
		}

		if mark != game.Turn() {
			return apperror.ErrNotYourTurn
		}

		if err = game.MakeTurn(row, col); err != nil {
			return err
		}

		s.touchedAt = that.now()

		if s.bot != nil && !game.IsFinished() {
			if _, err = s.bot.MakeTurn(game); err != nil && !errors.Is(err, apperror.ErrNoAvailableMoves) {
				return fmt.Errorf("bot failed to answer: %w", err)
			}
		}

		// a board too small for both histories can fill up without a line
		if !game.IsFinished() && len(game.EmptyCells()) == 0 {
			game.Stop()
		}

		if game.IsFinished() {
			that.finish(ctx, s)
		} else {
			that.refresh(ctx, s)
		}

		match = entity.NewMatch(s.key, game)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return match, nil
}

func (that *MatchManager) GetMatch(_ context.Context, key string) (*entity.Match, error) {
	s := that.lookup(key)
	if s == nil {
		return nil, apperror.ErrGameNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return entity.NewMatch(s.key, s.game), nil
}

// GetMatchByPlayer - the match the player is bound to.
func (that *MatchManager) GetMatchByPlayer(ctx context.Context, playerID string) (*entity.Match, error) {
	key, err := that.players.ActiveMatch(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active match: %w", err)
	}

	if key == "" {
		return nil, apperror.ErrGameNotFound
	}

	return that.GetMatch(ctx, key)
}

// Reset - cancels the match on behalf of one of its participants.
func (that *MatchManager) Reset(ctx context.Context, key, playerID string) error {
	err := that.withMatch(ctx, key, func(s *session) error {
		if _, err := that.participant(s, playerID); err != nil {
			return err
		}

		if !s.game.IsFinished() {
			s.game.Stop()
			that.release(ctx, s.game)
		}

		that.forget(s)

		return nil
	})
	if err != nil {
		return err
	}

	that.logger.Info("match reset", "key", key, "player", playerID)

	return nil
}

// Sweep - finishes matches idle for longer than the turn timeout and forgets finished
// matches once their retention has passed.
// Sessions held by a turn are left for the next sweep.
func (that *MatchManager) Sweep(ctx context.Context) {
	now := that.now()

	that.mu.RLock()
	sessions := make([]*session, 0, len(that.matches))
	for _, s := range that.matches {
		sessions = append(sessions, s)
	}
	that.mu.RUnlock()

	for _, s := range sessions {
		if !s.mu.TryLock() {
			continue
		}

		switch {
		case s.game.IsFinished() && now.Sub(s.finishedAt) >= that.timings.FinishedRetention:
			that.forget(s)
		case !s.game.IsFinished() && now.Sub(s.touchedAt) >= that.timings.TurnTimeout:
			s.game.Stop()
			that.finish(ctx, s)
			that.logger.Info("match timed out", "key", s.key, "idle", now.Sub(s.touchedAt))
		}

		s.mu.Unlock()
	}
}

// Run - sweeps on every interval until ctx is done.
func (that *MatchManager) Run(ctx context.Context) {
	ticker := time.NewTicker(that.timings.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			that.Sweep(ctx)
		}
	}
}

// Len - number of matches kept in memory, finished ones included.
func (that *MatchManager) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.matches)
}

func (that *MatchManager) withLock(ctx context.Context, key string, fn func() error) error {
	token, err := that.locks.Acquire(ctx, key, that.timings.LockTTL)
	if err != nil {
		return err
	}

	defer func() {
		if err := that.locks.Release(ctx, key, token); err != nil {
			that.logger.Warn("failed to release lock", "key", key, "error", err)
		}
	}()

	return fn()
}

// withLocks - holds every key in order, releasing in reverse.
func (that *MatchManager) withLocks(ctx context.Context, keys []string, fn func() error) error {
	if len(keys) == 0 {
		return fn()
	}

	return that.withLock(ctx, keys[0], func() error {
		return that.withLocks(ctx, keys[1:], fn)
	})
}

// startLockKeys - player locks sorted by id, then the match lock. A player is checked
// and bound under their own lock.
func (that *MatchManager) startLockKeys(matchKey string, playerIDs ...string) []string {
	keys := make([]string, 0, len(playerIDs)+1)
	for _, id := range playerIDs {
		keys = append(keys, playerLockPrefix+id)
	}
	slices.Sort(keys)

	return append(keys, matchKey)
}

func (that *MatchManager) withMatch(ctx context.Context, key string, fn func(s *session) error) error {
	s := that.lookup(key)
	if s == nil {
		return apperror.ErrGameNotFound
	}

	return that.withLock(ctx, key, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		return fn(s)
	})
}

// participant - the human's mark in the match. The bot id never counts as a participant.
func (that *MatchManager) participant(s *session, playerID string) (caro.Mark, error) {
	if playerID == "" || (s.bot != nil && playerID == entity.BotPlayerID) {
		return caro.Empty, apperror.ErrNotParticipant
	}

	mark := s.game.MarkOf(playerID)
	if mark == caro.Empty {
		return caro.Empty, apperror.ErrNotParticipant
	}

	return mark, nil
}

// ensureFree - fails when the player is bound to a match that is still being played.
// Bindings to unknown or finished matches are stale and ignored.
func (that *MatchManager) ensureFree(ctx context.Context, playerID string) error {
	key, err := that.players.ActiveMatch(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get active match: %w", err)
	}

	if key == "" {
		return nil
	}

	s := that.lookup(key)
	if s == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.IsFinished() {
		return nil
	}

	return apperror.ErrGameAlreadyExists
}

func (that *MatchManager) firstMover() caro.Mark {
	switch that.settings.FirstMover {
	case caro.FirstMoverO:
		return caro.O
	case caro.FirstMoverRandom:
		that.rndMu.Lock()
		defer that.rndMu.Unlock()

		if that.rnd.Intn(2) == 0 {
			return caro.X
		}

		return caro.O
	default:
		return caro.X
	}
}

func (that *MatchManager) bindingTTL() time.Duration {
	return that.timings.TurnTimeout + that.timings.FinishedRetention
}

func (that *MatchManager) finish(ctx context.Context, s *session) {
	s.finishedAt = that.now()
	that.release(ctx, s.game)

	winner, ok := s.game.Winner()
	if ok {
		that.logger.Info("match finished", "key", s.key, "winner", winner.String(), "moves", s.game.Moves())
	} else {
		that.logger.Info("match finished without winner", "key", s.key, "moves", s.game.Moves())
	}
}

func (that *MatchManager) refresh(ctx context.Context, s *session) {
	for _, id := range that.humans(s.game) {
		if err := that.players.JoinMatch(ctx, id, s.key, that.bindingTTL()); err != nil {
			that.logger.Warn("failed to refresh player binding", "player", id, "error", err)
		}
	}
}

func (that *MatchManager) release(ctx context.Context, game *caro.Game) {
	for _, id := range that.humans(game) {
		if err := that.players.LeaveMatch(ctx, id); err != nil {
			that.logger.Warn("failed to release player", "player", id, "error", err)
		}
	}
}

func (that *MatchManager) humans(game *caro.Game) []string {
	if !game.IsPvP() {
		return []string{game.Player(caro.X)}
	}

	return []string{game.Player(caro.X), game.Player(caro.O)}
}

func (that *MatchManager) lookup(key string) *session {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.matches[key]
}

func (that *MatchManager) register(s *session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.matches[s.key] = s
}

func (that *MatchManager) forget(s *session) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.matches[s.key] == s {
		delete(that.matches, s.key)
	}
}

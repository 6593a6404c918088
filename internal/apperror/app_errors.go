package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrNotParticipant    = errors.New("player is not a participant of this game")
	ErrSelfChallenge     = errors.New("can't challenge yourself")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrMatchBusy         = errors.New("match is busy, try again")
	ErrInvalidSettings   = errors.New("invalid game settings")
)

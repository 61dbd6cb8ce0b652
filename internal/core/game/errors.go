package game

import "errors"

var (
	ErrNotEnoughPlayers = errors.New("a minimum of 2 players is required to start the game")
	ErrGameOver         = errors.New("game is already over")
	ErrGameInProgress   = errors.New("game is still in progress")
)

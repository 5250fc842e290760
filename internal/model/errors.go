package model

import "errors"

var (
	ErrInvalidSetup       = errors.New("invalid board setup")
	ErrNoPiece            = errors.New("no piece at square")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrNoSelection        = errors.New("no piece selected")
	ErrIllegalMove        = errors.New("illegal move")
	ErrPromotionPending   = errors.New("pawn promotion pending")
	ErrNoPromotionPending = errors.New("no pawn promotion pending")
	ErrInvalidPromotion   = errors.New("invalid promotion choice")
	ErrGameOver           = errors.New("game is over")
)

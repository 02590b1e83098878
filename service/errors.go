package service

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid loan amount")
	ErrInvalidRate   = errors.New("invalid interest rate")
	ErrInvalidTerm   = errors.New("invalid loan term")
)

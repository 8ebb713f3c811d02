package service

import "errors"

var (
	ErrInvalidRunID          = errors.New("invalid run id")
	ErrNotStarted            = errors.New("run sync client is not started")
	ErrClientClosed          = errors.New("run sync client is closed")
	ErrInvalidModeTransition = errors.New("invalid sync mode transition")

	ErrEmptyToken = errors.New("token is empty")
)

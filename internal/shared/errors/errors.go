package errors

import "errors"

var (
	ErrMissingBotToken  = errors.New("TELEGRAM_BOT_TOKEN is required to start the bot")
	ErrUnauthorized     = errors.New("unauthorized user")
	ErrStatsNotFound    = errors.New("population statistics not found")
	ErrInvalidStats     = errors.New("invalid population statistics")
	ErrInvalidFilter    = errors.New("invalid filter")
	ErrUnknownFilterKey = errors.New("unknown filter key")
)

var (
	ErrPresetNotFound    = errors.New("preset not found")
	ErrInvalidPresetName = errors.New("invalid preset name")
)

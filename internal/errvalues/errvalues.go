package errvalues

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrGoalExists     = errors.New("goal for this day already exists")
	ErrGoalNotFound   = errors.New("goal doesn't exists")
	ErrNoGoalHistory  = errors.New("user has no previous goals")
	ErrGoalAlreadyMet = errors.New("daily goal already achieved")
	ErrInvalidTarget  = errors.New("target must be a positive number of milliliters")

	ErrWaterTypeNotFound = errors.New("water type doesn't exists")
	ErrWrongOwner        = errors.New("entity belongs to other user")
)

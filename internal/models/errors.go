package models

import (
	"errors"
)

var (
	ErrGeneral              = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound     = errors.New("there is no")
	ErrAmountNotPositive    = errors.New("transaction amounts must be larger than zero")
	ErrGoalLimitNotPositive = errors.New("goal limits must be larger than zero")
	ErrWatchThresholdNotSet = errors.New("watch thresholds must be larger than zero")
	ErrWatchRangeIncomplete = errors.New("custom watches need both a range start and a range end")
	ErrOwnerRequired        = errors.New("an owner is required for this resource")
)

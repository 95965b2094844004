package dailylog

import "errors"

var (
	ErrDailyLogNotFound = errors.New("daily log not found")
	ErrProjectNotFound  = errors.New("referenced project not found")
)

package entity

import "time"

// Challenge asks users to rate TargetCount items of one content type
// inside the [StartAt, EndAt) window.
type Challenge struct {
	Base

	Title       string
	ContentType ContentType
	TargetCount int

	StartAt time.Time
	EndAt   time.Time
}

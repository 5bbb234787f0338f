package entities

import "time"

// StatusHistory is one audit row per executed transition.
type StatusHistory struct {
	HistoryID  string
	BRDID      string
	FromStatus BRDStatus
	ToStatus   BRDStatus
	ChangedBy  string
	Comment    string
	CreatedAt  time.Time
}

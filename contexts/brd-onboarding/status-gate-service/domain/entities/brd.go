package entities

import (
	"strings"
	"time"
)

type BRDStatus string

const (
	StatusDraft           BRDStatus = "Draft"
	StatusInProgress      BRDStatus = "In Progress"
	StatusInternalReview  BRDStatus = "Internal Review"
	StatusInReview        BRDStatus = "In Review"
	StatusReviewed        BRDStatus = "Reviewed"
	StatusReadyForSignoff BRDStatus = "Ready for Sign-Off"
	StatusSignedOff       BRDStatus = "Signed Off"
	StatusConfidential    BRDStatus = "Confidential"
)

type BRD struct {
	BRDID           string
	Title           string
	Status          BRDStatus
	CreatorUsername string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func IsRecognizedStatus(value string) bool {
	switch BRDStatus(strings.TrimSpace(value)) {
	case StatusDraft, StatusInProgress, StatusInternalReview, StatusInReview,
		StatusReviewed, StatusReadyForSignoff, StatusSignedOff, StatusConfidential:
		return true
	default:
		return false
	}
}

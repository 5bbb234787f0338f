package entities

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

// BRDView is the read model this module needs from the BRD store: enough to
// run the access decision, nothing more.
type BRDView struct {
	BRDID           string
	Status          BRDStatus
	CreatorUsername string
}

package entities

import "time"

type SourceType string

const (
	SourceBRD  SourceType = "BRD"
	SourceSite SourceType = "SITE"
)

type GroupStatus string

const (
	GroupStatusOpen     GroupStatus = "open"
	GroupStatusResolved GroupStatus = "resolved"
)

// CommentGroup is one thread of comments scoped to a single field of a BRD
// (or site) section. The (BRDID, SourceType, SiteID, SectionName, FieldPath)
// tuple is unique per BRD.
type CommentGroup struct {
	GroupID     string
	BRDID       string
	SourceType  SourceType
	SiteID      string
	SectionName string
	FieldPath   string
	Status      GroupStatus
	Entries     []CommentEntry
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CommentEntry is append-only; only read flags mutate after creation.
type CommentEntry struct {
	EntryID     string
	GroupID     string
	AuthorEmail string
	AuthorRole  Role
	Text        string
	ReadBy      []string
	CreatedAt   time.Time
}

func IsSupportedSourceType(value SourceType) bool {
	switch value {
	case SourceBRD, SourceSite:
		return true
	default:
		return false
	}
}

func IsSupportedGroupStatus(value GroupStatus) bool {
	switch value {
	case GroupStatusOpen, GroupStatusResolved:
		return true
	default:
		return false
	}
}

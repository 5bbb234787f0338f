package httptransport

import "time"

// AddCommentRequest is the request body for appending one comment entry.
type AddCommentRequest struct {
	SourceType  string `json:"source_type"`
	SiteID      string `json:"site_id,omitempty"`
	SectionName string `json:"section_name"`
	FieldPath   string `json:"field_path"`
	Text        string `json:"text"`
}

// UpdateGroupStatusRequest sets a comment group's resolution status.
type UpdateGroupStatusRequest struct {
	Status string `json:"status"`
}

type CommentEntryDTO struct {
	EntryID     string    `json:"entry_id"`
	GroupID     string    `json:"group_id"`
	AuthorEmail string    `json:"author_email"`
	AuthorRole  string    `json:"author_role"`
	Text        string    `json:"text"`
	ReadBy      []string  `json:"read_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CommentGroupDTO struct {
	GroupID     string            `json:"group_id"`
	BRDID       string            `json:"brd_id"`
	SourceType  string            `json:"source_type"`
	SiteID      string            `json:"site_id,omitempty"`
	SectionName string            `json:"section_name"`
	FieldPath   string            `json:"field_path"`
	Status      string            `json:"status"`
	Entries     []CommentEntryDTO `json:"entries"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ListCommentsResponse struct {
	BRDID  string            `json:"brd_id"`
	Groups []CommentGroupDTO `json:"groups"`
}

type AddCommentResponse struct {
	Entry CommentEntryDTO `json:"entry"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

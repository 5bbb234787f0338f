package httptransport

import "time"

// CreateBRDRequest is the request body for BRD creation.
type CreateBRDRequest struct {
	BRDID string `json:"brd_id"`
	Title string `json:"title,omitempty"`
}

// UpdateStatusRequest is the request body for a status transition attempt.
type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

type BRDResponse struct {
	BRDID           string    `json:"brd_id"`
	Title           string    `json:"title,omitempty"`
	Status          string    `json:"status"`
	CreatorUsername string    `json:"creator_username"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateStatusResponse struct {
	BRDID      string `json:"brd_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ChangedBy  string `json:"changed_by"`
}

type StatusHistoryDTO struct {
	HistoryID  string    `json:"history_id"`
	BRDID      string    `json:"brd_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type StatusHistoryResponse struct {
	BRDID   string             `json:"brd_id"`
	History []StatusHistoryDTO `json:"history"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

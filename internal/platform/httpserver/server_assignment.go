package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	assignmenterrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
	assignmenthttp "brdflow/contexts/brd-onboarding/assignment-service/transport/http"
)

func (s *Server) handleReassign(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeAssignmentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	var req assignmenthttp.ReassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAssignmentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.assignments.Handler.ReassignHandler(r.Context(), callerRole(r), identity, req)
	if err != nil {
		writeAssignmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReassignMany(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeAssignmentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	var req assignmenthttp.ReassignManyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAssignmentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.assignments.Handler.ReassignManyHandler(r.Context(), callerRole(r), identity, req)
	if err != nil {
		writeAssignmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAssignmentStatus(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeAssignmentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	resp, err := s.assignments.Handler.AssignmentStatusHandler(
		r.Context(),
		r.PathValue("brd_id"),
		callerRole(r),
		identity,
	)
	if err != nil {
		writeAssignmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeAssignmentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	query := r.URL.Query()
	resp, err := s.assignments.Handler.ListAssignmentsHandler(
		r.Context(),
		callerRole(r),
		identity,
		query.Get("assignee_email"),
		query.Get("assignee_role"),
	)
	if err != nil {
		writeAssignmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAssigneeEmails(w http.ResponseWriter, r *http.Request) {
	resp, err := s.assignments.Handler.ListAssigneeEmailsHandler(
		r.Context(),
		callerRole(r),
		r.URL.Query().Get("assignee_role"),
	)
	if err != nil {
		writeAssignmentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAssignmentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, assignmenterrors.ErrBRDNotFound),
		errors.Is(err, assignmenterrors.ErrUserNotFound):
		writeAssignmentError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, assignmenterrors.ErrEmptyBRDID),
		errors.Is(err, assignmenterrors.ErrInvalidAssignmentRequest),
		errors.Is(err, assignmenterrors.ErrRoleMismatch):
		writeAssignmentError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, assignmenterrors.ErrForbidden):
		writeAssignmentError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeAssignmentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAssignmentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, assignmenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	commenterrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
	commenthttp "brdflow/contexts/brd-onboarding/comment-access-service/transport/http"
)

func (s *Server) handleGetComments(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeCommentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	query := r.URL.Query()
	resp, err := s.comments.Handler.GetCommentsHandler(
		r.Context(),
		r.PathValue("brd_id"),
		callerRole(r),
		identity,
		query.Get("source_type"),
		query.Get("site_id"),
		query.Get("section_name"),
		query.Get("field_path"),
	)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeCommentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	var req commenthttp.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCommentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.comments.Handler.AddCommentHandler(r.Context(), r.PathValue("brd_id"), callerRole(r), identity, req)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateGroupStatus(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeCommentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	var req commenthttp.UpdateGroupStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCommentError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	err := s.comments.Handler.UpdateGroupStatusHandler(
		r.Context(),
		r.PathValue("brd_id"),
		r.PathValue("group_id"),
		callerRole(r),
		identity,
		req,
	)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMarkEntriesRead(w http.ResponseWriter, r *http.Request) {
	identity := callerIdentity(r)
	if identity == "" {
		writeCommentError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	err := s.comments.Handler.MarkEntriesReadHandler(
		r.Context(),
		r.PathValue("brd_id"),
		r.PathValue("group_id"),
		callerRole(r),
		identity,
	)
	if err != nil {
		writeCommentDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeCommentDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, commenterrors.ErrBRDNotFound),
		errors.Is(err, commenterrors.ErrCommentGroupNotFound):
		writeCommentError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, commenterrors.ErrEmptyBRDID),
		errors.Is(err, commenterrors.ErrInvalidCommentRequest):
		writeCommentError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, commenterrors.ErrForbidden):
		writeCommentError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeCommentError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCommentError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, commenthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	statusgateerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	statusgatehttp "brdflow/contexts/brd-onboarding/status-gate-service/transport/http"
)

func (s *Server) handleCreateBRD(w http.ResponseWriter, r *http.Request) {
	role := callerRole(r)
	identity := callerIdentity(r)
	if identity == "" {
		writeStatusGateError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	var req statusgatehttp.CreateBRDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatusGateError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.statusGate.Handler.CreateBRDHandler(r.Context(), role, identity, req)
	if err != nil {
		writeStatusGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetBRD(w http.ResponseWriter, r *http.Request) {
	resp, err := s.statusGate.Handler.GetBRDHandler(r.Context(), r.PathValue("brd_id"))
	if err != nil {
		writeStatusGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	role := callerRole(r)
	identity := callerIdentity(r)
	if identity == "" {
		writeStatusGateError(w, http.StatusUnauthorized, "missing_identity", "X-User-Email header is required")
		return
	}

	var req statusgatehttp.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatusGateError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.statusGate.Handler.UpdateStatusHandler(r.Context(), r.PathValue("brd_id"), role, identity, req)
	if err != nil {
		writeStatusGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListStatusHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.statusGate.Handler.ListHistoryHandler(r.Context(), r.PathValue("brd_id"))
	if err != nil {
		writeStatusGateDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeStatusGateDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, statusgateerrors.ErrBRDNotFound):
		writeStatusGateError(w, http.StatusNotFound, "brd_not_found", err.Error())
	case errors.Is(err, statusgateerrors.ErrEmptyBRDID),
		errors.Is(err, statusgateerrors.ErrInvalidStatusRequest):
		writeStatusGateError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, statusgateerrors.ErrDuplicateBRD):
		writeStatusGateError(w, http.StatusConflict, "duplicate_brd", err.Error())
	case errors.Is(err, statusgateerrors.ErrForbidden):
		writeStatusGateError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeStatusGateError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeStatusGateError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, statusgatehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

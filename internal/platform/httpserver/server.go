package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	assignment "brdflow/contexts/brd-onboarding/assignment-service"
	commentaccess "brdflow/contexts/brd-onboarding/comment-access-service"
	statusgate "brdflow/contexts/brd-onboarding/status-gate-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "brdflow/internal/platform/httpserver/docs"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	statusGate  statusgate.Module
	comments    commentaccess.Module
	assignments assignment.Module
}

func New(
	statusGateModule statusgate.Module,
	commentModule commentaccess.Module,
	assignmentModule assignment.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		statusGate:  statusGateModule,
		comments:    commentModule,
		assignments: assignmentModule,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/brds", s.handleCreateBRD)
	s.mux.HandleFunc("GET /api/brds/{brd_id}", s.handleGetBRD)
	s.mux.HandleFunc("PUT /api/brds/{brd_id}/status", s.handleUpdateStatus)
	s.mux.HandleFunc("GET /api/brds/{brd_id}/status-history", s.handleListStatusHistory)

	s.mux.HandleFunc("GET /api/brds/{brd_id}/comments", s.handleGetComments)
	s.mux.HandleFunc("POST /api/brds/{brd_id}/comments", s.handleAddComment)
	s.mux.HandleFunc("PUT /api/brds/{brd_id}/comments/{group_id}/status", s.handleUpdateGroupStatus)
	s.mux.HandleFunc("POST /api/brds/{brd_id}/comments/{group_id}/read", s.handleMarkEntriesRead)

	s.mux.HandleFunc("POST /api/assignments/reassign", s.handleReassign)
	s.mux.HandleFunc("POST /api/assignments/reassign-batch", s.handleReassignMany)
	s.mux.HandleFunc("GET /api/brds/{brd_id}/assignment-status", s.handleAssignmentStatus)
	s.mux.HandleFunc("GET /api/assignments", s.handleListAssignments)
	s.mux.HandleFunc("GET /api/assignments/assignees", s.handleListAssigneeEmails)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// callerRole reads the role resolved upstream by the identity proxy.
func callerRole(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Role"))
}

// callerIdentity reads the caller's identity (email/username) header.
func callerIdentity(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Email"))
}

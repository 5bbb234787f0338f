package commentaccess

import (
	"log/slog"

	httpadapter "brdflow/contexts/brd-onboarding/comment-access-service/adapters/http"
	"brdflow/contexts/brd-onboarding/comment-access-service/adapters/memory"
	application "brdflow/contexts/brd-onboarding/comment-access-service/application"
	"brdflow/contexts/brd-onboarding/comment-access-service/application/commands"
	"brdflow/contexts/brd-onboarding/comment-access-service/application/queries"
	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	"brdflow/contexts/brd-onboarding/comment-access-service/ports"
)

// Module is the comment-access-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	BRDs        ports.BRDReader
	Assignments ports.AssignmentLookup
	Comments    ports.CommentRepository
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires comment use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	guard := application.AccessGuard{
		BRDs:        deps.BRDs,
		Assignments: deps.Assignments,
		Clock:       deps.Clock,
		Logger:      deps.Logger,
	}

	getComments := queries.GetCommentsUseCase{
		Guard:    guard,
		Comments: deps.Comments,
		Logger:   deps.Logger,
	}
	addComment := commands.AddCommentUseCase{
		Guard:    guard,
		Comments: deps.Comments,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Logger:   deps.Logger,
	}
	updateGroupStatus := commands.UpdateGroupStatusUseCase{
		Guard:    guard,
		Comments: deps.Comments,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	markEntriesRead := commands.MarkEntriesReadUseCase{
		Guard:    guard,
		Comments: deps.Comments,
		Logger:   deps.Logger,
	}

	handler := httpadapter.Handler{
		GetComments:       getComments,
		AddComment:        addComment,
		UpdateGroupStatus: updateGroupStatus,
		MarkEntriesRead:   markEntriesRead,
		Logger:            deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger, seed []entities.BRDView) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		BRDs:        store,
		Assignments: store,
		Comments:    store,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}

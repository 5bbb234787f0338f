package assignment

import (
	"log/slog"

	httpadapter "brdflow/contexts/brd-onboarding/assignment-service/adapters/http"
	"brdflow/contexts/brd-onboarding/assignment-service/adapters/memory"
	"brdflow/contexts/brd-onboarding/assignment-service/application/commands"
	"brdflow/contexts/brd-onboarding/assignment-service/application/queries"
	"brdflow/contexts/brd-onboarding/assignment-service/ports"
)

// Module is the assignment-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	BRDs        ports.BRDReader
	Users       ports.UserDirectory
	Assignments ports.AssignmentRepository
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires assignment use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	reassign := commands.ReassignUseCase{
		BRDs:        deps.BRDs,
		Users:       deps.Users,
		Assignments: deps.Assignments,
		Clock:       deps.Clock,
		IDGen:       deps.IDGen,
		Logger:      deps.Logger,
	}
	reassignMany := commands.ReassignManyUseCase{
		Reassign: reassign,
		Logger:   deps.Logger,
	}
	assignmentStatus := queries.AssignmentStatusUseCase{
		Assignments: deps.Assignments,
		Logger:      deps.Logger,
	}
	listAssignments := queries.ListAssignmentsUseCase{
		Assignments: deps.Assignments,
		Logger:      deps.Logger,
	}
	listAssigneeEmails := queries.ListAssigneeEmailsUseCase{
		Assignments: deps.Assignments,
		Logger:      deps.Logger,
	}

	handler := httpadapter.Handler{
		Reassign:           reassign,
		ReassignMany:       reassignMany,
		AssignmentStatus:   assignmentStatus,
		ListAssignments:    listAssignments,
		ListAssigneeEmails: listAssigneeEmails,
		Logger:             deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger, seed []ports.BRDView) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		BRDs:        store,
		Users:       store,
		Assignments: store,
		Clock:       store,
		IDGen:       store,
		Logger:      logger,
	})
	module.Store = store
	return module
}

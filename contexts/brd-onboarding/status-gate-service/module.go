package statusgate

import (
	"log/slog"

	httpadapter "brdflow/contexts/brd-onboarding/status-gate-service/adapters/http"
	"brdflow/contexts/brd-onboarding/status-gate-service/adapters/memory"
	"brdflow/contexts/brd-onboarding/status-gate-service/application/commands"
	"brdflow/contexts/brd-onboarding/status-gate-service/application/queries"
	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"
)

// Module is the status-gate-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	BRDs    ports.BRDRepository
	History ports.HistoryRepository
	Outbox  ports.OutboxRepository
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

// NewModule wires status-gate use-cases and transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	createBRD := commands.CreateBRDUseCase{
		BRDs:   deps.BRDs,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	attemptTransition := commands.AttemptTransitionUseCase{
		BRDs:    deps.BRDs,
		History: deps.History,
		Outbox:  deps.Outbox,
		Clock:   deps.Clock,
		IDGen:   deps.IDGen,
		Logger:  deps.Logger,
	}
	getBRD := queries.GetBRDUseCase{
		BRDs:   deps.BRDs,
		Logger: deps.Logger,
	}
	listHistory := queries.ListStatusHistoryUseCase{
		BRDs:    deps.BRDs,
		History: deps.History,
		Logger:  deps.Logger,
	}

	handler := httpadapter.Handler{
		CreateBRD:         createBRD,
		AttemptTransition: attemptTransition,
		GetBRD:            getBRD,
		ListHistory:       listHistory,
		Logger:            deps.Logger,
	}

	return Module{
		Handler: handler,
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger, seed []entities.BRD) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		BRDs:    store,
		History: store,
		Outbox:  store,
		Clock:   store,
		IDGen:   store,
		Logger:  logger,
	})
	module.Store = store
	return module
}

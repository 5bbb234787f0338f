package httpadapter

import (
	"context"
	"log/slog"
	"strings"

	application "brdflow/contexts/brd-onboarding/assignment-service/application"
	"brdflow/contexts/brd-onboarding/assignment-service/application/commands"
	"brdflow/contexts/brd-onboarding/assignment-service/application/queries"
	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	httptransport "brdflow/contexts/brd-onboarding/assignment-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	Reassign           commands.ReassignUseCase
	ReassignMany       commands.ReassignManyUseCase
	AssignmentStatus   queries.AssignmentStatusUseCase
	ListAssignments    queries.ListAssignmentsUseCase
	ListAssigneeEmails queries.ListAssigneeEmailsUseCase
	Logger             *slog.Logger
}

// ReassignHandler replaces the active assignee for one BRD.
func (h Handler) ReassignHandler(
	ctx context.Context,
	role string,
	identity string,
	request httptransport.ReassignRequest,
) (httptransport.ReassignResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http reassign received",
		"event", "assignment_http_reassign_received",
		"module", "brd-onboarding/assignment-service",
		"layer", "transport",
		"brd_id", request.BRDID,
		"role", role,
	)

	assignment, err := h.Reassign.Execute(ctx, commands.ReassignCommand{
		ActorRole:     entities.ParseRole(role),
		ActorIdentity: identity,
		BRDID:         request.BRDID,
		AssigneeEmail: request.AssigneeEmail,
		AssigneeRole:  parseAssigneeRole(request.AssigneeRole),
	})
	if err != nil {
		return httptransport.ReassignResponse{}, err
	}
	return httptransport.ReassignResponse{Assignment: assignmentDTO(assignment)}, nil
}

// ReassignManyHandler reassigns a batch of BRDs fail-soft.
func (h Handler) ReassignManyHandler(
	ctx context.Context,
	role string,
	identity string,
	request httptransport.ReassignManyRequest,
) (httptransport.ReassignManyResponse, error) {
	items := make([]commands.ReassignItem, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ReassignItem{
			BRDID:         item.BRDID,
			AssigneeEmail: item.AssigneeEmail,
			AssigneeRole:  parseAssigneeRole(item.AssigneeRole),
		})
	}

	result, err := h.ReassignMany.Execute(ctx, commands.ReassignManyCommand{
		ActorRole:     entities.ParseRole(role),
		ActorIdentity: identity,
		Items:         items,
	})
	if err != nil {
		return httptransport.ReassignManyResponse{}, err
	}

	resultItems := make([]httptransport.ReassignItemResultDTO, 0, len(result.Items))
	for _, item := range result.Items {
		dto := httptransport.ReassignItemResultDTO{
			BRDID:         item.BRDID,
			AssigneeEmail: item.AssigneeEmail,
			Success:       item.Success,
			Error:         item.Error,
		}
		if item.Success {
			assignment := assignmentDTO(item.Assignment)
			dto.Assignment = &assignment
		}
		resultItems = append(resultItems, dto)
	}
	response := httptransport.ReassignManyResponse{
		Status: result.Status,
		Items:  resultItems,
	}
	if len(result.Errors) > 0 {
		response.Errors = result.Errors
	}
	return response, nil
}

// AssignmentStatusHandler answers the BA self-lookup for one BRD.
func (h Handler) AssignmentStatusHandler(
	ctx context.Context,
	brdID string,
	role string,
	identity string,
) (httptransport.AssignmentStatusResponse, error) {
	result, err := h.AssignmentStatus.Execute(ctx, queries.AssignmentStatusQuery{
		Role:     entities.ParseRole(role),
		Identity: identity,
		BRDID:    brdID,
	})
	if err != nil {
		return httptransport.AssignmentStatusResponse{}, err
	}
	return httptransport.AssignmentStatusResponse{
		BRDID:    result.BRDID,
		Assigned: result.Assigned,
	}, nil
}

// ListAssignmentsHandler lists active assignments for one assignee.
func (h Handler) ListAssignmentsHandler(
	ctx context.Context,
	role string,
	identity string,
	assigneeEmail string,
	assigneeRole string,
) (httptransport.ListAssignmentsResponse, error) {
	parsedRole := parseAssigneeRole(assigneeRole)
	assignments, err := h.ListAssignments.Execute(ctx, queries.ListAssignmentsQuery{
		Role:          entities.ParseRole(role),
		Identity:      identity,
		AssigneeEmail: assigneeEmail,
		AssigneeRole:  parsedRole,
	})
	if err != nil {
		return httptransport.ListAssignmentsResponse{}, err
	}

	items := make([]httptransport.AssignmentDTO, 0, len(assignments))
	for _, assignment := range assignments {
		items = append(items, assignmentDTO(assignment))
	}
	return httptransport.ListAssignmentsResponse{
		AssigneeEmail: strings.TrimSpace(strings.ToLower(assigneeEmail)),
		AssigneeRole:  string(parsedRole),
		Assignments:   items,
	}, nil
}

// ListAssigneeEmailsHandler lists distinct active assignee emails per role type.
func (h Handler) ListAssigneeEmailsHandler(
	ctx context.Context,
	role string,
	assigneeRole string,
) (httptransport.ListAssigneeEmailsResponse, error) {
	parsedRole := parseAssigneeRole(assigneeRole)
	emails, err := h.ListAssigneeEmails.Execute(ctx, queries.ListAssigneeEmailsQuery{
		Role:         entities.ParseRole(role),
		AssigneeRole: parsedRole,
	})
	if err != nil {
		return httptransport.ListAssigneeEmailsResponse{}, err
	}
	return httptransport.ListAssigneeEmailsResponse{
		AssigneeRole: string(parsedRole),
		Emails:       emails,
	}, nil
}

func parseAssigneeRole(value string) entities.AssigneeRole {
	return entities.AssigneeRole(strings.ToLower(strings.TrimSpace(value)))
}

func assignmentDTO(assignment entities.Assignment) httptransport.AssignmentDTO {
	return httptransport.AssignmentDTO{
		AssignmentID:  assignment.AssignmentID,
		BRDID:         assignment.BRDID,
		AssigneeEmail: assignment.AssigneeEmail,
		AssigneeRole:  string(assignment.AssigneeRole),
		Active:        assignment.Active,
		AssignedAt:    assignment.AssignedAt,
		UpdatedAt:     assignment.UpdatedAt,
	}
}

package project

import (
	"context"
	"time"

	"github.com/sitehub/sitehub-backend-go/internal/domain/employee"
	"github.com/sitehub/sitehub-backend-go/internal/domain/project"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/database"
	"github.com/sitehub/sitehub-backend-go/internal/pkg/jwt"
	"github.com/sitehub/sitehub-backend-go/internal/repository/postgresql"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	employee.EmployeeRepository
}

func NewProjectService(
	db *database.DB,
	projectRepository project.ProjectRepository,
	employeeRepository employee.EmployeeRepository,
) project.ProjectService {
	return &ProjectServiceImpl{
		db:                 db,
		ProjectRepository:  projectRepository,
		EmployeeRepository: employeeRepository,
	}
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context, filter project.ListProjectsFilter) ([]project.ProjectResponse, int64, error) {
	filter.Normalize()

	projects, total, err := s.ProjectRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}

	return responses, total, nil
}

// ListByClient implements project.ProjectService.
func (s *ProjectServiceImpl) ListByClient(ctx context.Context, clientID string) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}

	return responses, nil
}

// Get implements project.ProjectService. The response carries the member
// roster.
func (s *ProjectServiceImpl) Get(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	members, err := s.ProjectRepository.ListMembers(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	resp := project.ToResponse(p)
	for _, m := range members {
		resp.Members = append(resp.Members, project.ToMemberResponse(m))
	}

	return resp, nil
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	created, err := s.ProjectRepository.Create(ctx, project.Project{
		ProjectNumber: req.ProjectNumber,
		Name:          req.Name,
		ClientID:      req.ClientID,
		Status:        req.Status,
		Address:       req.Address,
		Description:   req.Description,
		StartDate:     parseDatePtr(req.StartDate),
		EndDate:       parseDatePtr(req.EndDate),
		CreatedBy:     &actor.UserID,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return s.Get(ctx, created.ID)
}

// Update implements project.ProjectService.
func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	existing, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.ClientID != nil {
		if *req.ClientID == "" {
			existing.ClientID = nil
		} else {
			existing.ClientID = req.ClientID
		}
	}
	if req.Status != nil {
		existing.Status = *req.Status
	}
	if req.Address != nil {
		existing.Address = req.Address
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.StartDate != nil {
		existing.StartDate = parseDatePtr(req.StartDate)
	}
	if req.EndDate != nil {
		existing.EndDate = parseDatePtr(req.EndDate)
	}
	existing.UpdatedBy = &actor.UserID

	if err := s.ProjectRepository.Update(ctx, existing); err != nil {
		return project.ProjectResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	actor, err := jwt.ActorFromContext(ctx)
	if err != nil {
		return err
	}

	return s.ProjectRepository.SoftDelete(ctx, id, actor.UserID)
}

// ListMembers implements project.ProjectService.
func (s *ProjectServiceImpl) ListMembers(ctx context.Context, projectID string) ([]project.MemberResponse, error) {
	if _, err := s.ProjectRepository.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	members, err := s.ProjectRepository.ListMembers(ctx, projectID)
	if err != nil {
		return nil, err
	}

	responses := make([]project.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, project.ToMemberResponse(m))
	}

	return responses, nil
}

// AssignMembers implements project.ProjectService. The roster is replaced
// wholesale: delete then recreate inside one transaction.
func (s *ProjectServiceImpl) AssignMembers(ctx context.Context, req project.AssignMembersRequest) ([]project.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.ProjectRepository.GetByID(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	// Every referenced employee must exist before any write happens.
	ids := make([]string, 0, len(req.Members))
	for _, m := range req.Members {
		ids = append(ids, m.EmployeeID)
	}
	found, err := s.EmployeeRepository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(uniqueStrings(ids)) {
		return nil, employee.ErrEmployeeNotFound
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.ProjectRepository.DeleteMembers(txCtx, req.ProjectID); err != nil {
			return err
		}
		for _, m := range req.Members {
			if _, err := s.ProjectRepository.AddMember(txCtx, project.Member{
				ProjectID:  req.ProjectID,
				EmployeeID: m.EmployeeID,
				SiteRole:   m.SiteRole,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.ListMembers(ctx, req.ProjectID)
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

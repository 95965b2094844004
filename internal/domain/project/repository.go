package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	GetByNumber(ctx context.Context, projectNumber string) (Project, error)
	List(ctx context.Context, filter ListProjectsFilter) ([]Project, int64, error)
	ListByClient(ctx context.Context, clientID string) ([]Project, error)
	Update(ctx context.Context, p Project) error
	SoftDelete(ctx context.Context, id string, deletedBy string) error

	// Member assignment. ReplaceMembers runs delete-then-recreate and is
	// expected to be called inside a transaction.
	ListMembers(ctx context.Context, projectID string) ([]Member, error)
	DeleteMembers(ctx context.Context, projectID string) error
	AddMember(ctx context.Context, m Member) (Member, error)
}

type ProjectService interface {
	List(ctx context.Context, filter ListProjectsFilter) ([]ProjectResponse, int64, error)
	ListByClient(ctx context.Context, clientID string) ([]ProjectResponse, error)
	Get(ctx context.Context, id string) (ProjectResponse, error)
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error

	ListMembers(ctx context.Context, projectID string) ([]MemberResponse, error)
	AssignMembers(ctx context.Context, req AssignMembersRequest) ([]MemberResponse, error)
}

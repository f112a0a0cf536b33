package project

import (
	"context"
	"fmt"
	"time"

	"github.com/brightops/peoplehub-backend-go/internal/domain/project"
)

type ProjectService struct {
	project.ProjectRepository
}

func NewProjectService(projectRepository project.ProjectRepository) *ProjectService {
	return &ProjectService{ProjectRepository: projectRepository}
}

func (s *ProjectService) CreateProject(ctx context.Context, tenantID, createdBy string, req project.CreateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	p := project.Project{
		TenantID:      tenantID,
		Name:          req.Name,
		ClientName:    req.ClientName,
		Category:      req.Category,
		Description:   req.Description,
		InitialNotes:  req.InitialNotes,
		Status:        project.StatusPlanning,
		ProjectHeadID: req.ProjectHeadID,
		CreatedBy:     &createdBy,
	}
	if req.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		p.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		p.EndDate = &end
	}

	created, err := s.ProjectRepository.Create(ctx, p)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (s *ProjectService) GetProject(ctx context.Context, tenantID, id string) (project.Project, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	if p.TenantID != tenantID {
		return project.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, tenantID string, status *project.ProjectStatus) ([]project.Project, error) {
	projects, err := s.ProjectRepository.GetByTenantID(ctx, tenantID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, tenantID string, req project.UpdateProjectRequest) (project.Project, error) {
	if err := req.Validate(); err != nil {
		return project.Project{}, err
	}

	p, err := s.GetProject(ctx, tenantID, req.ID)
	if err != nil {
		return project.Project{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.ClientName != nil {
		p.ClientName = req.ClientName
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Status != nil {
		p.Status = project.ProjectStatus(*req.Status)
	}
	if req.ProjectHeadID != nil {
		p.ProjectHeadID = req.ProjectHeadID
	}
	if req.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		p.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := time.Parse("2006-01-02", *req.EndDate)
		p.EndDate = &end
	}

	if err := s.ProjectRepository.Update(ctx, p); err != nil {
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return s.ProjectRepository.GetByID(ctx, p.ID)
}

func (s *ProjectService) DeleteProject(ctx context.Context, tenantID, id string) error {
	if _, err := s.GetProject(ctx, tenantID, id); err != nil {
		return err
	}
	return s.ProjectRepository.Delete(ctx, id)
}

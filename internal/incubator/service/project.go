package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/domain"
	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// ErrNotFound reports a resource that is absent or owned by another user.
// The two cases are deliberately the same error so existence never leaks.
var ErrNotFound = errors.New("not_found")

// ProjectService manages a user's projects. Every read and mutation is
// scoped to the owning user id produced by the authorization guard.
type ProjectService struct {
	Store store.Store
}

func (s *ProjectService) Create(ctx context.Context, userID idx.ID, name, description string) (domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Project{}, fmt.Errorf("%w: missing project name", ErrValidation)
	}
	if len(name) > domain.MaxProjectNameLength {
		return domain.Project{}, fmt.Errorf("%w: project name exceeds %d characters", ErrValidation, domain.MaxProjectNameLength)
	}

	now := time.Now().UTC()
	project := domain.Project{
		ID:          idx.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Projects().CreateProject(ctx, project); err != nil {
		return domain.Project{}, err
	}
	return project, nil
}

func (s *ProjectService) Get(ctx context.Context, userID, projectID idx.ID) (domain.Project, error) {
	project, err := s.Store.Projects().GetProjectForUser(ctx, projectID, userID)
	if err != nil {
		return domain.Project{}, mapStoreNotFound(err)
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, userID idx.ID) ([]domain.Project, error) {
	return s.Store.Projects().ListProjectsByUser(ctx, userID)
}

func (s *ProjectService) Update(ctx context.Context, userID, projectID idx.ID, name, description string) (domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Project{}, fmt.Errorf("%w: missing project name", ErrValidation)
	}
	if len(name) > domain.MaxProjectNameLength {
		return domain.Project{}, fmt.Errorf("%w: project name exceeds %d characters", ErrValidation, domain.MaxProjectNameLength)
	}

	project := domain.Project{
		ID:          projectID,
		UserID:      userID,
		Name:        name,
		Description: description,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.Store.Projects().UpdateProjectForUser(ctx, project); err != nil {
		return domain.Project{}, mapStoreNotFound(err)
	}

	return s.Get(ctx, userID, projectID)
}

func (s *ProjectService) Delete(ctx context.Context, userID, projectID idx.ID) error {
	if err := s.Store.Projects().DeleteProjectForUser(ctx, projectID, userID); err != nil {
		return mapStoreNotFound(err)
	}
	return nil
}

func mapStoreNotFound(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

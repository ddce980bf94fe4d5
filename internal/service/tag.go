package service

import (
	"context"
	"errors"

	"quizlog/internal/domain"
	"quizlog/internal/dto"
)

// TagService defines the interface for tag-related operations
type TagService interface {
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
	ListTags(ctx context.Context) ([]dto.TagResponse, error)
}

type tagService struct {
	repo domain.TagRepository
}

// NewTagService creates a new instance of tagService
func NewTagService(repo domain.TagRepository) TagService {
	return &tagService{repo: repo}
}

// CreateTag implements TagService. Tag names are unique; creating an
// existing name surfaces a conflict.
func (s *tagService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	tag := &domain.Tag{Name: req.Name}
	if err := tag.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTag(ctx, tag); err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == domain.CodeDuplicateTag {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to save tag", err)
	}

	return &dto.TagResponse{ID: tag.ID, Name: tag.Name}, nil
}

// ListTags implements TagService
func (s *tagService) ListTags(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.repo.GetAllTags(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list tags", err)
	}

	result := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, dto.TagResponse{ID: t.ID, Name: t.Name})
	}
	return result, nil
}

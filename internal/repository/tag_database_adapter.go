package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"quizlog/internal/domain"
	"quizlog/internal/repository/models"
	"quizlog/internal/util"

	"github.com/jmoiron/sqlx"
)

// TagDatabaseAdapter implements domain.TagRepository using sqlx.DB
type TagDatabaseAdapter struct {
	db *sqlx.DB
}

// NewTagDatabaseAdapter creates a new instance of TagDatabaseAdapter
func NewTagDatabaseAdapter(db *sqlx.DB) domain.TagRepository {
	return &TagDatabaseAdapter{db: db}
}

// SaveTag implements domain.TagRepository. A unique-constraint
// violation on the tag name surfaces as a duplicate-tag domain error.
func (a *TagDatabaseAdapter) SaveTag(ctx context.Context, tag *domain.Tag) error {
	if tag == nil {
		return fmt.Errorf("cannot save nil tag")
	}
	exec := GetExecutor(ctx, a.db)

	tag.ID = util.NewULID()
	query := `INSERT INTO tags (ID, NAME, CREATED_AT) VALUES (:1, :2, :3)`
	_, err := exec.ExecContext(ctx, query, tag.ID, tag.Name, time.Now())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewDuplicateTagError(tag.Name)
		}
		return fmt.Errorf("failed to save tag: %w", err)
	}
	return nil
}

// isUniqueViolation detects an Oracle unique constraint violation
// (ORA-00001).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "ORA-00001")
}

// GetTagByName implements domain.TagRepository
func (a *TagDatabaseAdapter) GetTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	exec := GetExecutor(ctx, a.db)

	var modelTag models.Tag
	query := `SELECT ID, NAME, CREATED_AT, DELETED_AT FROM tags WHERE NAME = :1 AND DELETED_AT IS NULL`
	err := exec.GetContext(ctx, &modelTag, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tag by name %s: %w", name, err)
	}
	tag := toDomainTag(&modelTag)
	return &tag, nil
}

// GetAllTags implements domain.TagRepository
func (a *TagDatabaseAdapter) GetAllTags(ctx context.Context) ([]*domain.Tag, error) {
	exec := GetExecutor(ctx, a.db)

	var modelTags []models.Tag
	query := `SELECT ID, NAME, CREATED_AT, DELETED_AT FROM tags WHERE DELETED_AT IS NULL ORDER BY NAME`
	if err := exec.SelectContext(ctx, &modelTags, query); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	tags := make([]*domain.Tag, 0, len(modelTags))
	for i := range modelTags {
		tag := toDomainTag(&modelTags[i])
		tags = append(tags, &tag)
	}
	return tags, nil
}

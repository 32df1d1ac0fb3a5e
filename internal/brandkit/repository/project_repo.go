package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
)

// ProjectRepository persists brand_projects rows.
type ProjectRepository struct {
	db DBTX
}

func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts one project and returns it with the identity assigned by the database.
func (r *ProjectRepository) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	details := req.Details
	if details == nil {
		details = map[string]string{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal project details: %w", err)
	}

	const q = `
insert into brand_projects (user_id, brand_name, industry, audience, personality, details)
values ($1, $2, nullif($3, ''), nullif($4, ''), nullif($5, ''), $6::jsonb)
returning id::text, created_at;
`
	p := &domain.Project{
		UserID:      req.UserID,
		BrandName:   req.BrandName,
		Industry:    req.Industry,
		Audience:    req.Audience,
		Personality: req.Personality,
		Details:     details,
	}
	err = r.db.QueryRow(ctx, q,
		req.UserID, req.BrandName, req.Industry, req.Audience, req.Personality, string(detailsJSON),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

// CountOrphans counts projects that never received a kit.
func (r *ProjectRepository) CountOrphans(ctx context.Context) (int64, error) {
	const q = `
select count(*)
from brand_projects p
where not exists (select 1 from brand_kits k where k.project_id = p.id);
`
	var n int64
	if err := r.db.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count orphaned projects: %w", err)
	}
	return n, nil
}

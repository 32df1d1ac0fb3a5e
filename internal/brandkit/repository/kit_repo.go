package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
)

// KitRepository persists brand_kits rows and serves the dashboard read.
type KitRepository struct {
	db DBTX
}

func NewKitRepository(db DBTX) *KitRepository {
	return &KitRepository{db: db}
}

// Create stores a parsed result against an existing project.
func (r *KitRepository) Create(ctx context.Context, req domain.CreateKitRequest) (*domain.BrandKit, error) {
	const q = `
insert into brand_kits (project_id, profile, result)
values ($1::uuid, $2, $3::jsonb)
returning id::text, created_at;
`
	k := &domain.BrandKit{
		ProjectID: req.ProjectID,
		Profile:   req.Profile,
		Result:    req.Result,
	}
	err := r.db.QueryRow(ctx, q, req.ProjectID, req.Profile, string(req.Result)).Scan(&k.ID, &k.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create brand kit: %w", err)
	}
	return k, nil
}

// ListByUser returns the user's projects, newest first, each with its latest kit.
// Projects without a kit are included with a nil Kit.
func (r *KitRepository) ListByUser(ctx context.Context, userID string) ([]domain.DashboardEntry, error) {
	const q = `
select p.id::text, p.brand_name, p.created_at, k.result
from brand_projects p
left join lateral (
	select result
	from brand_kits
	where project_id = p.id
	order by created_at desc
	limit 1
) k on true
where p.user_id = $1
order by p.created_at desc, p.id desc;
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list brand kits: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DashboardEntry, 0, 16)
	for rows.Next() {
		var e domain.DashboardEntry
		var result []byte
		if err := rows.Scan(&e.ID, &e.BrandName, &e.CreatedAt, &result); err != nil {
			return nil, fmt.Errorf("failed to scan brand kit row: %w", err)
		}
		if len(result) > 0 {
			e.Kit = json.RawMessage(result)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate brand kits: %w", err)
	}
	return out, nil
}

package http

import (
	"context"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/service"
)

// Service is the pipeline the handlers drive.
type Service interface {
	Generate(ctx context.Context, req domain.BrandRequest) (*service.Result, error)
	ListKits(ctx context.Context, userID string) ([]domain.DashboardEntry, error)
}

// Handler handles brand kit HTTP requests.
type Handler struct {
	svc Service
}

func New(svc Service) *Handler {
	return &Handler{svc: svc}
}

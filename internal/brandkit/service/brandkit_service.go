package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/domain"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/events"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/kit"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/llm"
	"github.com/brandkit-studio/brandkit-backend/internal/brandkit/profile"
	"github.com/brandkit-studio/brandkit-backend/internal/logging"
)

type ProjectStore interface {
	Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error)
}

type KitStore interface {
	Create(ctx context.Context, req domain.CreateKitRequest) (*domain.BrandKit, error)
	ListByUser(ctx context.Context, userID string) ([]domain.DashboardEntry, error)
}

// BrandKitService runs the generation pipeline for one profile:
// validate, create project, generate, parse, save kit.
//
// The project insert and the kit insert are separate statements. A failure after
// the project exists leaves that project without a kit; it is reported, not undone.
type BrandKitService struct {
	projects  ProjectStore
	kits      KitStore
	generator llm.Generator
	profile   *profile.GenerationProfile
	events    events.Publisher
	metrics   *Metrics
}

func NewBrandKitService(projects ProjectStore, kits KitStore, gen llm.Generator, p *profile.GenerationProfile, pub events.Publisher) *BrandKitService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &BrandKitService{
		projects:  projects,
		kits:      kits,
		generator: gen,
		profile:   p,
		events:    pub,
		metrics:   &Metrics{},
	}
}

// Result is what a successful pipeline run produced.
type Result struct {
	Project *domain.Project
	Kit     *domain.BrandKit
}

// Generate runs the pipeline. Every returned error wraps one of the domain stage
// sentinels so callers can map it with errors.Is.
func (s *BrandKitService) Generate(ctx context.Context, req domain.BrandRequest) (*Result, error) {
	logger := logging.FromContext(ctx).With(
		zap.String("operation", "generate_brand_kit"),
		zap.String("profile", s.profile.Name),
	)

	if err := req.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projects.Create(ctx, req.ProjectRequest())
	if err != nil {
		logger.Error("project creation failed", zap.Error(err))
		return nil, domain.Fail(domain.ErrProjectCreate, err)
	}
	logger = logger.With(zap.String("project_id", project.ID))

	prompt, err := s.profile.Render(req)
	if err != nil {
		logger.Error("prompt rendering failed", zap.Error(err))
		s.publishFailure(ctx, logger, project, domain.ErrGenerationCall)
		return nil, domain.Fail(domain.ErrGenerationCall, err)
	}

	start := time.Now()
	raw, err := s.generator.Generate(ctx, llm.Request{
		System:      prompt.System,
		User:        prompt.User,
		Model:       s.profile.Model,
		Temperature: s.profile.Temperature,
		MaxTokens:   s.profile.MaxTokens,
		JSONMode:    s.profile.JSONMode,
	})
	elapsed := time.Since(start)
	s.metrics.recordGeneration(elapsed, err)
	if err != nil {
		logger.Error("generation call failed", zap.Error(err), zap.Duration("latency", elapsed))
		s.publishFailure(ctx, logger, project, domain.ErrGenerationCall)
		return nil, domain.Fail(domain.ErrGenerationCall, err)
	}
	logger.Info("generation completed", zap.Duration("latency", elapsed), zap.Int("output_len", len(raw)))

	result, err := s.parse(logger, raw)
	if err != nil {
		s.metrics.recordParseFailure()
		s.publishFailure(ctx, logger, project, domain.ErrGenerationParse)
		return nil, err
	}

	saved, err := s.kits.Create(ctx, domain.CreateKitRequest{
		ProjectID: project.ID,
		Profile:   s.profile.Name,
		Result:    result,
	})
	if err != nil {
		logger.Error("saving brand kit failed", zap.Error(err))
		s.publishFailure(ctx, logger, project, domain.ErrKitSave)
		return nil, domain.Fail(domain.ErrKitSave, err)
	}
	s.metrics.recordKitSaved()

	s.publish(ctx, logger, events.Event{
		Type:      events.TypeKitGenerated,
		UserID:    project.UserID,
		ProjectID: project.ID,
		KitID:     saved.ID,
		BrandName: project.BrandName,
		Profile:   s.profile.Name,
	})

	return &Result{Project: project, Kit: saved}, nil
}

func (s *BrandKitService) parse(logger *zap.Logger, raw string) (json.RawMessage, error) {
	result, err := kit.Parse(raw)
	if err != nil {
		logger.Error("generation output is not valid JSON", zap.Error(err), zap.String("raw_output", raw))
		return nil, err
	}

	issues := kit.Inspect(s.profile.Shape, result)
	if len(issues) == 0 {
		return result, nil
	}
	if s.profile.Strict {
		logger.Error("generation output does not match profile shape",
			zap.Strings("issues", issues), zap.String("raw_output", raw))
		return nil, domain.Fail(domain.ErrGenerationParse, errors.New(issues[0]))
	}
	logger.Warn("generation output departs from profile shape", zap.Strings("issues", issues))
	return result, nil
}

// ListKits returns the user's projects newest first with their kits.
func (s *BrandKitService) ListKits(ctx context.Context, userID string) ([]domain.DashboardEntry, error) {
	items, err := s.kits.ListByUser(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("listing brand kits failed",
			zap.String("operation", "list_brand_kits"), zap.String("user_id", userID), zap.Error(err))
		return nil, domain.Fail(domain.ErrKitsRead, err)
	}
	if items == nil {
		items = []domain.DashboardEntry{}
	}
	return items, nil
}

// Profile reports the profile this service generates with.
func (s *BrandKitService) Profile() *profile.GenerationProfile { return s.profile }

func (s *BrandKitService) Metrics() Snapshot { return s.metrics.Snapshot() }

func (s *BrandKitService) publishFailure(ctx context.Context, logger *zap.Logger, p *domain.Project, stage error) {
	s.publish(ctx, logger, events.Event{
		Type:      events.TypeKitFailed,
		UserID:    p.UserID,
		ProjectID: p.ID,
		BrandName: p.BrandName,
		Profile:   s.profile.Name,
		Category:  stage.Error(),
	})
}

func (s *BrandKitService) publish(ctx context.Context, logger *zap.Logger, ev events.Event) {
	if err := s.events.Publish(ctx, ev); err != nil {
		logger.Warn("event publish failed", zap.String("event_type", ev.Type), zap.Error(err))
	}
}

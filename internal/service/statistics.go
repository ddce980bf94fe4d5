package service

import (
	"context"
	"encoding/json"

	"quizlog/internal/cache"
	"quizlog/internal/config"
	"quizlog/internal/domain"
	"quizlog/internal/dto"
	"quizlog/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatisticsService summarizes the recorded attempt history for the
// dashboard.
type StatisticsService interface {
	GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error)
	// InvalidateCache drops the cached snapshot so the next read
	// reflects newly recorded attempts.
	InvalidateCache(ctx context.Context) error
}

type statisticsService struct {
	attemptRepo domain.AttemptRepository
	cache       domain.Cache
	cfg         *config.Config
}

// NewStatisticsService creates a new instance of statisticsService.
// cache may be nil; statistics are then recomputed on every call.
func NewStatisticsService(attemptRepo domain.AttemptRepository, cacheClient domain.Cache, cfg *config.Config) StatisticsService {
	return &statisticsService{
		attemptRepo: attemptRepo,
		cache:       cacheClient,
		cfg:         cfg,
	}
}

func statisticsCacheKey() string {
	return cache.GenerateCacheKey("statistics", "summary", "global")
}

// GetStatistics implements StatisticsService.
//
// The snapshot is served from the cache when present; otherwise the
// four aggregates are computed concurrently over the attempt history
// and the result is cached with a TTL. Cache failures only degrade to
// a recompute, they never fail the request. Attempts are only read
// after full persistence, so a live recompute racing new submissions
// sees a consistent, if slightly stale, history.
func (s *statisticsService) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, statisticsCacheKey())
		if err == nil {
			var resp dto.StatisticsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &resp); unmarshalErr == nil {
				return &resp, nil
			}
			logger.Get().Warn("Discarding undecodable statistics cache entry")
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Failed to read statistics cache", zap.Error(err))
		}
	}

	var (
		totalAttempts  int
		averageScore   float64
		categoryStats  []domain.CategoryStat
		recentAttempts []*domain.Attempt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalAttempts, err = s.attemptRepo.CountAttempts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		averageScore, err = s.attemptRepo.AverageScorePercent(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categoryStats, err = s.attemptRepo.GetCategoryStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recentAttempts, err = s.attemptRepo.ListAttempts(gctx, nil, s.cfg.Statistics.RecentAttemptsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("Failed to compute statistics", err)
	}

	resp := &dto.StatisticsResponse{
		TotalAttempts:  totalAttempts,
		AverageScore:   averageScore,
		CategoryStats:  make([]dto.CategoryStatResponse, 0, len(categoryStats)),
		RecentAttempts: make([]dto.AttemptResponse, 0, len(recentAttempts)),
	}
	for _, stat := range categoryStats {
		resp.CategoryStats = append(resp.CategoryStats, dto.CategoryStatResponse{
			TagName:        stat.TagName,
			CorrectRate:    stat.CorrectRate,
			TotalQuestions: stat.TotalQuestions,
		})
	}
	for _, attempt := range recentAttempts {
		resp.RecentAttempts = append(resp.RecentAttempts, toAttemptResponse(attempt))
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(resp); err == nil {
			if setErr := s.cache.Set(ctx, statisticsCacheKey(), string(encoded), s.cfg.Statistics.CacheTTL); setErr != nil {
				logger.Get().Warn("Failed to write statistics cache", zap.Error(setErr))
			}
		}
	}

	return resp, nil
}

// InvalidateCache implements StatisticsService
func (s *statisticsService) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, statisticsCacheKey())
}

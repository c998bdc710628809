package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/pkg/cache"
)

type statsGateway interface {
	GlobalStats(ctx context.Context, year, examType string) (*models.GlobalStats, error)
	WilayaStats(ctx context.Context, wilayaID int, year, examType string) (*models.WilayaStats, error)
	EtablissementStats(ctx context.Context, etablissementID int, year, examType string) (*models.EtablissementStats, error)
	TopStudents(ctx context.Context, year, examType string) ([]models.TopStudent, error)
	TopSchools(ctx context.Context, year, examType string) ([]models.TopSchool, error)
}

// StatsService proxies the aggregate statistics endpoints. Each endpoint
// keeps its own fixed response shape; payloads are cached briefly since
// ranking recomputation is a server-side concern.
type StatsService struct {
	gateway statsGateway
	cache   cache.Cache
	ttl     time.Duration
	logger  *zap.Logger
}

// NewStatsService constructs the stats service. cache may be nil.
func NewStatsService(gateway statsGateway, c cache.Cache, ttl time.Duration, logger *zap.Logger) *StatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatsService{gateway: gateway, cache: c, ttl: ttl, logger: logger}
}

// Global returns session-wide aggregates.
func (s *StatsService) Global(ctx context.Context, year, examType string) (*models.GlobalStats, error) {
	var stats models.GlobalStats
	err := s.cached(ctx, fmt.Sprintf("stats:global:%s:%s", year, examType), &stats, func() (interface{}, error) {
		return s.gateway.GlobalStats(ctx, year, examType)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Wilaya returns aggregates scoped to one region.
func (s *StatsService) Wilaya(ctx context.Context, wilayaID int, year, examType string) (*models.WilayaStats, error) {
	var stats models.WilayaStats
	err := s.cached(ctx, fmt.Sprintf("stats:wilaya:%d:%s:%s", wilayaID, year, examType), &stats, func() (interface{}, error) {
		return s.gateway.WilayaStats(ctx, wilayaID, year, examType)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Etablissement returns aggregates scoped to one school.
func (s *StatsService) Etablissement(ctx context.Context, etablissementID int, year, examType string) (*models.EtablissementStats, error) {
	var stats models.EtablissementStats
	err := s.cached(ctx, fmt.Sprintf("stats:etab:%d:%s:%s", etablissementID, year, examType), &stats, func() (interface{}, error) {
		return s.gateway.EtablissementStats(ctx, etablissementID, year, examType)
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TopStudents returns the ranked student leaderboard.
func (s *StatsService) TopStudents(ctx context.Context, year, examType string) ([]models.TopStudent, error) {
	var top []models.TopStudent
	err := s.cached(ctx, fmt.Sprintf("stats:top-students:%s:%s", year, examType), &top, func() (interface{}, error) {
		return s.gateway.TopStudents(ctx, year, examType)
	})
	return top, err
}

// TopSchools returns the ranked school leaderboard.
func (s *StatsService) TopSchools(ctx context.Context, year, examType string) ([]models.TopSchool, error) {
	var top []models.TopSchool
	err := s.cached(ctx, fmt.Sprintf("stats:top-schools:%s:%s", year, examType), &top, func() (interface{}, error) {
		return s.gateway.TopSchools(ctx, year, examType)
	})
	return top, err
}

func (s *StatsService) cached(ctx context.Context, key string, out interface{}, fetch func() (interface{}, error)) error {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err == nil {
			if unmarshalErr := json.Unmarshal(raw, out); unmarshalErr == nil {
				return nil
			}
		} else if err != cache.ErrMiss {
			s.logger.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	value, err := fetch()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

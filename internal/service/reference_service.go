package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rimedu/resultats-portal-api/internal/dto"
	"github.com/rimedu/resultats-portal-api/internal/models"
	"github.com/rimedu/resultats-portal-api/pkg/cache"
)

type referenceGateway interface {
	Wilayas(ctx context.Context) ([]models.Wilaya, error)
	Etablissements(ctx context.Context, wilayaID string) ([]models.Etablissement, error)
	Series(ctx context.Context, examType string) ([]models.Serie, error)
	Sessions(ctx context.Context, examType, year string) ([]models.Session, error)
}

type cacheMetrics interface {
	CacheHit()
	CacheMiss()
}

// ReferenceService serves the static lookup dimensions. Reference data
// rarely changes, so responses are cached; cache failures degrade to a
// direct upstream call, never to an error.
type ReferenceService struct {
	gateway referenceGateway
	cache   cache.Cache
	ttl     time.Duration
	metrics cacheMetrics
	logger  *zap.Logger
}

// NewReferenceService constructs the reference service. cache and metrics
// may be nil.
func NewReferenceService(gateway referenceGateway, c cache.Cache, ttl time.Duration, metrics cacheMetrics, logger *zap.Logger) *ReferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceService{gateway: gateway, cache: c, ttl: ttl, metrics: metrics, logger: logger}
}

// Wilayas lists regions.
func (s *ReferenceService) Wilayas(ctx context.Context) ([]models.Wilaya, error) {
	var wilayas []models.Wilaya
	err := s.cached(ctx, "ref:wilayas", &wilayas, func() (interface{}, error) {
		return s.gateway.Wilayas(ctx)
	})
	return wilayas, err
}

// Etablissements lists schools, optionally scoped to a wilaya.
func (s *ReferenceService) Etablissements(ctx context.Context, wilayaID string) ([]models.Etablissement, error) {
	var etablissements []models.Etablissement
	err := s.cached(ctx, "ref:etablissements:"+wilayaID, &etablissements, func() (interface{}, error) {
		return s.gateway.Etablissements(ctx, wilayaID)
	})
	return etablissements, err
}

// Series lists exam tracks, optionally scoped to an exam type.
func (s *ReferenceService) Series(ctx context.Context, examType string) ([]models.Serie, error) {
	var series []models.Serie
	err := s.cached(ctx, "ref:series:"+examType, &series, func() (interface{}, error) {
		return s.gateway.Series(ctx, examType)
	})
	return series, err
}

// Sessions lists published sessions.
func (s *ReferenceService) Sessions(ctx context.Context, examType, year string) ([]models.Session, error) {
	return s.gateway.Sessions(ctx, examType, year)
}

// Bootstrap issues the independent page-load fetches concurrently and
// joins them before returning. Each fetch writes a disjoint field, so the
// only coordination needed is the join itself.
func (s *ReferenceService) Bootstrap(ctx context.Context, examType string) (*dto.BootstrapResponse, error) {
	out := &dto.BootstrapResponse{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		wilayas, err := s.Wilayas(gctx)
		if err != nil {
			return err
		}
		out.Wilayas = wilayas
		return nil
	})
	g.Go(func() error {
		series, err := s.Series(gctx, examType)
		if err != nil {
			return err
		}
		out.Series = series
		return nil
	})
	g.Go(func() error {
		sessions, err := s.gateway.Sessions(gctx, examType, "")
		if err != nil {
			return err
		}
		out.Sessions = sessions
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// cached runs fetch through the cache when one is configured.
func (s *ReferenceService) cached(ctx context.Context, key string, out interface{}, fetch func() (interface{}, error)) error {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		if err == nil {
			if unmarshalErr := json.Unmarshal(raw, out); unmarshalErr == nil {
				if s.metrics != nil {
					s.metrics.CacheHit()
				}
				return nil
			}
		} else if err != cache.ErrMiss {
			s.logger.Warn("reference cache read failed", zap.String("key", key), zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.CacheMiss()
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
			s.logger.Warn("reference cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

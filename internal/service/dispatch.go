package service

import (
	"context"
	"fmt"

	"github.com/shenikar/sos_intake_system/internal/config"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// CrewRepository определяет контракт каталога экипажей
type CrewRepository interface {
	ListCrews(ctx context.Context) ([]models.Crew, error)
	GetCrewsFromCache(ctx context.Context) ([]models.Crew, error)
	SetCrewsCache(ctx context.Context, crews []models.Crew) error
}

// DispatchService определяет контракт назначения ближайшего экипажа
type DispatchService interface {
	ChooseClosestCrew(ctx context.Context, lat, lon float64) (string, *int, error)
}

type dispatchService struct {
	crews       CrewRepository
	logger      *logrus.Logger
	avgSpeedKmh float64
}

func NewDispatchService(crews CrewRepository, logger *logrus.Logger, cfg *config.Config) DispatchService {
	return &dispatchService{
		crews:       crews,
		logger:      logger,
		avgSpeedKmh: cfg.AvgSpeedKmh,
	}
}

// ChooseClosestCrew выбирает экипаж с минимальным расстоянием по прямой
// до точки инцидента и выводит ETA из этого расстояния.
// Пустой каталог экипажей - штатная ситуация (например, до загрузки сидов):
// возвращается страж Unassigned без ETA и без ошибки.
// При равных расстояниях побеждает экипаж с меньшим id.
func (s *dispatchService) ChooseClosestCrew(ctx context.Context, lat, lon float64) (string, *int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "ChooseClosestCrew",
	})

	crews, err := s.loadCrews(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load crew directory")
		return "", nil, fmt.Errorf("service: could not load crews: %w", err)
	}

	if len(crews) == 0 {
		log.Info("No crews registered, case stays unassigned")
		return models.CrewUnassigned, nil, nil
	}

	best := crews[0]
	bestDist := geo.DistanceKm(lat, lon, best.BaseLat, best.BaseLng)
	for _, crew := range crews[1:] {
		d := geo.DistanceKm(lat, lon, crew.BaseLat, crew.BaseLng)
		if d < bestDist || (d == bestDist && crew.ID < best.ID) {
			best = crew
			bestDist = d
		}
	}

	eta := geo.EtaMinutes(bestDist, s.avgSpeedKmh)
	log.WithFields(logrus.Fields{
		"crew":        best.Name,
		"distance_km": bestDist,
		"eta_minutes": eta,
	}).Info("Closest crew chosen")
	return best.Name, &eta, nil
}

// loadCrews читает каталог экипажей через кэш. Любой сбой кэша
// деградирует к чтению из БД, а не к ошибке.
func (s *dispatchService) loadCrews(ctx context.Context) ([]models.Crew, error) {
	cached, err := s.crews.GetCrewsFromCache(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Crew cache read failed, falling back to database")
	} else if cached != nil {
		return cached, nil
	}

	crews, err := s.crews.ListCrews(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.crews.SetCrewsCache(ctx, crews); err != nil {
		s.logger.WithError(err).Warn("Failed to cache crew list")
	}
	return crews, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/sos_intake_system/internal/apperrors"
	"github.com/shenikar/sos_intake_system/internal/config"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// CaseService определяет контракт операций дашборда над кейсами
type CaseService interface {
	ListRecent(ctx context.Context, limit int, openOnly bool) ([]*models.Case, error)
	CloseCase(ctx context.Context, id int64) error
}

type caseService struct {
	cases        CaseRepository
	publisher    webhook.EventPublisher
	logger       *logrus.Logger
	defaultLimit int
}

func NewCaseService(cases CaseRepository, publisher webhook.EventPublisher, logger *logrus.Logger, cfg *config.Config) CaseService {
	return &caseService{
		cases:        cases,
		publisher:    publisher,
		logger:       logger,
		defaultLimit: cfg.DashboardLimit,
	}
}

// ListRecent возвращает последние кейсы для доски оператора
func (s *caseService) ListRecent(ctx context.Context, limit int, openOnly bool) ([]*models.Case, error) {
	if limit < 1 || limit > 500 {
		limit = s.defaultLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "case",
		"method":    "ListRecent",
		"limit":     limit,
		"open_only": openOnly,
	})

	cases, err := s.cases.ListRecent(ctx, limit, openOnly)
	if err != nil {
		log.WithError(err).Error("Failed to list recent cases from repository")
		return nil, fmt.Errorf("service: could not list recent cases: %w", err)
	}

	log.WithField("count", len(cases)).Info("Recent cases listed")
	return cases, nil
}

// CloseCase переводит кейс в статус closed. Закрытие уже закрытого или
// несуществующего кейса - безвредный no-op на границе дашборда;
// различие видно только в логах.
func (s *caseService) CloseCase(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "case",
		"method":  "CloseCase",
		"case_id": id,
	})

	closed, err := s.cases.Close(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to close case in repository")
		return fmt.Errorf("service: could not close case: %w", err)
	}

	if !closed {
		if _, err := s.cases.GetByID(ctx, id); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				log.Warn("Close requested for unknown case, treating as no-op")
				return nil
			}
			log.WithError(err).Error("Failed to inspect case after no-op close")
			return fmt.Errorf("service: could not inspect case: %w", err)
		}
		log.Info("Case already closed, close is a no-op")
		return nil
	}

	if err := s.publisher.Publish(ctx, webhook.NewCaseClosedEvent(id)); err != nil {
		log.WithError(err).Warn("Failed to publish case closed event")
	}

	log.Info("Case closed")
	return nil
}

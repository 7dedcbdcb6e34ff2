package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// EtaPlaceholder - единственный токен, на место которого подставляется
// вычисленное ETA. Без токена в тексте ответа ETA сохраняется только в кейсе.
const EtaPlaceholder = "<ETA>"

// fallbackReply отправляется, когда сервис извлечения недоступен
const fallbackReply = "🆘 Response: Request received – standby while we process."

// CaseRepository определяет контракт для работы с хранилищем кейсов
type CaseRepository interface {
	Create(ctx context.Context, c *models.Case) error
	AttachLocationAndCrew(ctx context.Context, id int64, lat, lng float64, crewName string, etaMinutes *int) error
	Close(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Case, error)
	ListRecent(ctx context.Context, limit int, openOnly bool) ([]*models.Case, error)
}

// Extractor определяет контракт внешнего NLP-сервиса извлечения полей
type Extractor interface {
	Extract(ctx context.Context, phone, body string) (*models.Extraction, error)
}

// Geocoder определяет контракт сервиса геокодирования.
// Отсутствие совпадения - это (nil, nil), а не ошибка.
type Geocoder interface {
	Resolve(ctx context.Context, postcode string) (*models.Coordinates, error)
}

// IntakeService определяет контракт обработки входящих SOS-сообщений
type IntakeService interface {
	HandleIncomingMessage(ctx context.Context, phone, body string) string
}

type intakeService struct {
	cases     CaseRepository
	dispatch  DispatchService
	extractor Extractor
	geocoder  Geocoder
	publisher webhook.EventPublisher
	logger    *logrus.Logger
}

func NewIntakeService(cases CaseRepository, dispatch DispatchService, extractor Extractor, geocoder Geocoder, publisher webhook.EventPublisher, logger *logrus.Logger) IntakeService {
	return &intakeService{
		cases:     cases,
		dispatch:  dispatch,
		extractor: extractor,
		geocoder:  geocoder,
		publisher: publisher,
		logger:    logger,
	}
}

// HandleIncomingMessage проводит сообщение через конвейер
// извлечение -> геокодирование -> назначение экипажа -> запись кейса
// и возвращает текст ответа отправителю. Каждый шаг деградирует независимо:
// ответ человеку доставляется всегда, ретраев нет, каждый внешний вызов
// выполняется ровно один раз.
func (s *intakeService) HandleIncomingMessage(ctx context.Context, phone, body string) string {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "intake",
		"method":     "HandleIncomingMessage",
		"message_id": uuid.NewString(),
	})
	log.Info("Processing incoming SOS message")

	ext, err := s.extractor.Extract(ctx, phone, body)
	if err != nil {
		log.WithError(err).Error("Extraction failed, using fallback result")
		ext = &models.Extraction{People: 1, Needs: []string{}, Reply: fallbackReply}
	}

	reply := ext.Reply
	crewName := models.CrewUnassigned
	var coords *models.Coordinates
	var eta *int

	if ext.Postcode != "" {
		coords, err = s.geocoder.Resolve(ctx, ext.Postcode)
		if err != nil {
			log.WithError(err).Warn("Geocoding failed, case will have no coordinates")
			coords = nil
		}
	}

	// Назначение экипажа выполняется только при известных координатах
	if coords != nil {
		crewName, eta, err = s.dispatch.ChooseClosestCrew(ctx, coords.Lat, coords.Lng)
		if err != nil {
			log.WithError(err).Warn("Crew assignment failed, case stays unassigned")
			crewName, eta = models.CrewUnassigned, nil
		}
		if eta != nil && strings.Contains(reply, EtaPlaceholder) {
			reply = strings.ReplaceAll(reply, EtaPlaceholder, strconv.Itoa(*eta))
		}
	}

	c := &models.Case{
		Phone:    phone,
		RawMsg:   body,
		Postcode: ext.Postcode,
		People:   ext.People,
		Needs:    ext.Needs,
		Reply:    reply,
	}
	if err := s.cases.Create(ctx, c); err != nil {
		// Запись потеряна (принятый риск), но ответ отправителю доставляется
		log.WithError(err).Error("Failed to persist case, reply is still delivered")
		return reply
	}

	if coords != nil {
		if err := s.cases.AttachLocationAndCrew(ctx, c.ID, coords.Lat, coords.Lng, crewName, eta); err != nil {
			log.WithError(err).Error("Failed to attach location and crew to case")
		} else {
			c.Latitude, c.Longitude = &coords.Lat, &coords.Lng
			c.CrewName, c.EtaMinutes = crewName, eta
		}
	}

	if err := s.publisher.Publish(ctx, webhook.NewCaseCreatedEvent(c)); err != nil {
		log.WithError(err).Warn("Failed to publish case created event")
	}

	log.WithField("case_id", c.ID).Info("SOS message processed")
	return reply
}

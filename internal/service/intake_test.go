package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/service/mocks"
	"github.com/shenikar/sos_intake_system/internal/webhook"
	webhook_mocks "github.com/shenikar/sos_intake_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type intakeMocks struct {
	cases     *mocks.MockCaseRepository
	dispatch  *mocks.MockDispatchService
	extractor *mocks.MockExtractor
	geocoder  *mocks.MockGeocoder
	publisher *webhook_mocks.MockEventPublisher
}

// newTestIntakeService - вспомогательная функция для создания сервиса с моками
func newTestIntakeService(t *testing.T) (*intakeService, *intakeMocks) {
	ctrl := gomock.NewController(t)
	m := &intakeMocks{
		cases:     mocks.NewMockCaseRepository(ctrl),
		dispatch:  mocks.NewMockDispatchService(ctrl),
		extractor: mocks.NewMockExtractor(ctrl),
		geocoder:  mocks.NewMockGeocoder(ctrl),
		publisher: webhook_mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewIntakeService(m.cases, m.dispatch, m.extractor, m.geocoder, m.publisher, logger)
	return service.(*intakeService), m
}

func TestHandleIncomingMessage_FullPipeline(t *testing.T) {
	// Подготовка
	service, m := newTestIntakeService(t)
	ctx := context.Background()
	eta := 12

	// Ожидания
	m.extractor.EXPECT().
		Extract(ctx, "+447700900000", "Help, flooding at SW1A 1AA, 3 people").
		Return(&models.Extraction{
			Postcode: "SW1A 1AA",
			People:   3,
			Needs:    []string{"water", "medical"},
			Reply:    "Help is on the way, ETA <ETA> min.",
		}, nil).Times(1)

	m.geocoder.EXPECT().
		Resolve(ctx, "SW1A 1AA").
		Return(&models.Coordinates{Lat: 51.501, Lng: -0.1416}, nil).Times(1)

	m.dispatch.EXPECT().
		ChooseClosestCrew(ctx, 51.501, -0.1416).
		Return("Thames Alpha", &eta, nil).Times(1)

	m.cases.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			// Симулируем, что БД присвоила id и статус
			c.ID = 42
			c.Status = models.StatusOpen
			c.CrewName = models.CrewUnassigned
			// Подстановка ETA уже должна быть сделана до записи
			assert.Equal(t, "Help is on the way, ETA 12 min.", c.Reply)
			assert.Equal(t, 3, c.People)
			return nil
		}).Times(1)

	m.cases.EXPECT().
		AttachLocationAndCrew(ctx, int64(42), 51.501, -0.1416, "Thames Alpha", &eta).
		Return(nil).Times(1)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.CaseEvent) {
			assert.Equal(t, webhook.EventCaseCreated, event.Type)
			assert.Equal(t, int64(42), event.CaseID)
			assert.Equal(t, "Thames Alpha", event.CrewName)
		}).Return(nil).Times(1)

	// Действие
	reply := service.HandleIncomingMessage(ctx, "+447700900000", "Help, flooding at SW1A 1AA, 3 people")

	// Проверки
	assert.Equal(t, "Help is on the way, ETA 12 min.", reply)
}

func TestHandleIncomingMessage_ExtractionFailure(t *testing.T) {
	// Подготовка
	service, m := newTestIntakeService(t)
	ctx := context.Background()

	// Ожидания: отказ извлечения дает дефолтный результат,
	// геокодирование и назначение не вызываются
	m.extractor.EXPECT().
		Extract(ctx, "+1000", "gibberish").
		Return(nil, fmt.Errorf("flow timeout")).Times(1)
	m.geocoder.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)
	m.dispatch.EXPECT().ChooseClosestCrew(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m.cases.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			assert.Empty(t, c.Postcode)
			assert.Equal(t, 1, c.People)
			assert.Empty(t, c.Needs)
			c.ID = 1
			c.Status = models.StatusOpen
			return nil
		}).Times(1)

	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	reply := service.HandleIncomingMessage(ctx, "+1000", "gibberish")

	// Проверки: ответ не пустой даже при полном отказе извлечения
	assert.NotEmpty(t, reply)
	assert.Equal(t, fallbackReply, reply)
}

func TestHandleIncomingMessage_GeocodeNoMatch(t *testing.T) {
	// Подготовка
	service, m := newTestIntakeService(t)
	ctx := context.Background()

	// Ожидания: индекс не геокодируется, назначение не выполняется
	m.extractor.EXPECT().
		Extract(ctx, "+1000", "help").
		Return(&models.Extraction{
			Postcode: "ZZ99 9ZZ",
			People:   1,
			Needs:    []string{},
			Reply:    "Standby.",
		}, nil).Times(1)

	m.geocoder.EXPECT().Resolve(ctx, "ZZ99 9ZZ").Return(nil, nil).Times(1)
	m.dispatch.EXPECT().ChooseClosestCrew(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m.cases.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			c.ID = 2
			c.Status = models.StatusOpen
			c.CrewName = models.CrewUnassigned
			return nil
		}).Times(1)
	m.cases.EXPECT().AttachLocationAndCrew(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(_ context.Context, event webhook.CaseEvent) {
			assert.Equal(t, models.CrewUnassigned, event.CrewName)
			assert.Nil(t, event.EtaMinutes)
		}).Return(nil).Times(1)

	// Действие
	reply := service.HandleIncomingMessage(ctx, "+1000", "help")

	// Проверки
	assert.Equal(t, "Standby.", reply)
}

func TestHandleIncomingMessage_NoPlaceholderKeepsReply(t *testing.T) {
	// Подготовка
	service, m := newTestIntakeService(t)
	ctx := context.Background()
	eta := 30

	// Ожидания: токена <ETA> в ответе нет - текст не меняется,
	// но ETA все равно записывается в кейс
	m.extractor.EXPECT().
		Extract(ctx, "+1000", "help").
		Return(&models.Extraction{
			Postcode: "SW1A 1AA",
			People:   1,
			Needs:    []string{},
			Reply:    "Crew dispatched.",
		}, nil).Times(1)
	m.geocoder.EXPECT().Resolve(ctx, "SW1A 1AA").Return(&models.Coordinates{Lat: 51.5, Lng: -0.14}, nil).Times(1)
	m.dispatch.EXPECT().ChooseClosestCrew(ctx, 51.5, -0.14).Return("Thames Alpha", &eta, nil).Times(1)

	m.cases.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			c.ID = 3
			c.Status = models.StatusOpen
			return nil
		}).Times(1)
	m.cases.EXPECT().
		AttachLocationAndCrew(ctx, int64(3), 51.5, -0.14, "Thames Alpha", &eta).
		Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	reply := service.HandleIncomingMessage(ctx, "+1000", "help")

	// Проверки
	assert.Equal(t, "Crew dispatched.", reply)
}

func TestHandleIncomingMessage_PersistenceFailure(t *testing.T) {
	// Подготовка
	service, m := newTestIntakeService(t)
	ctx := context.Background()

	// Ожидания: сбой хранилища не блокирует ответ отправителю
	m.extractor.EXPECT().
		Extract(ctx, "+1000", "help").
		Return(&models.Extraction{People: 1, Needs: []string{}, Reply: "Standby."}, nil).Times(1)
	m.cases.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("бд недоступна")).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	reply := service.HandleIncomingMessage(ctx, "+1000", "help")

	// Проверки
	assert.Equal(t, "Standby.", reply)
}

func TestHandleIncomingMessage_AssignmentFailureLeavesUnassigned(t *testing.T) {
	// Подготовка
	service, m := newTestIntakeService(t)
	ctx := context.Background()

	// Ожидания: недоступный каталог экипажей деградирует до Unassigned
	m.extractor.EXPECT().
		Extract(ctx, "+1000", "help").
		Return(&models.Extraction{
			Postcode: "SW1A 1AA",
			People:   1,
			Needs:    []string{},
			Reply:    "ETA <ETA> min.",
		}, nil).Times(1)
	m.geocoder.EXPECT().Resolve(ctx, "SW1A 1AA").Return(&models.Coordinates{Lat: 51.5, Lng: -0.14}, nil).Times(1)
	m.dispatch.EXPECT().
		ChooseClosestCrew(ctx, 51.5, -0.14).
		Return("", nil, fmt.Errorf("каталог недоступен")).Times(1)

	m.cases.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Case) error {
			// Токен остается как есть: ETA не вычислено
			assert.Equal(t, "ETA <ETA> min.", c.Reply)
			c.ID = 4
			c.Status = models.StatusOpen
			return nil
		}).Times(1)
	m.cases.EXPECT().
		AttachLocationAndCrew(ctx, int64(4), 51.5, -0.14, models.CrewUnassigned, nil).
		Return(nil).Times(1)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	reply := service.HandleIncomingMessage(ctx, "+1000", "help")

	// Проверки
	assert.Equal(t, "ETA <ETA> min.", reply)
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/sos_intake_system/internal/config"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestDispatchService - вспомогательная функция для создания сервиса с моками
func newTestDispatchService(t *testing.T) (*dispatchService, *mocks.MockCrewRepository) {
	ctrl := gomock.NewController(t)
	crewMock := mocks.NewMockCrewRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{AvgSpeedKmh: 50}

	service := NewDispatchService(crewMock, logger, cfg)
	return service.(*dispatchService), crewMock
}

// expectCacheMissAndFill настраивает промах кэша и последующее кэширование списка
func expectCacheMissAndFill(crewMock *mocks.MockCrewRepository, ctx context.Context, crews []models.Crew) {
	crewMock.EXPECT().GetCrewsFromCache(ctx).Return(nil, nil).Times(1)
	crewMock.EXPECT().ListCrews(ctx).Return(crews, nil).Times(1)
	crewMock.EXPECT().SetCrewsCache(ctx, crews).Return(nil).Times(1)
}

func TestChooseClosestCrew_NoCrews(t *testing.T) {
	// Подготовка
	service, crewMock := newTestDispatchService(t)
	ctx := context.Background()

	// Ожидания: пустой каталог - валидный результат, не ошибка
	expectCacheMissAndFill(crewMock, ctx, []models.Crew{})

	// Действие
	name, eta, err := service.ChooseClosestCrew(ctx, 51.5, -0.12)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.CrewUnassigned, name)
	assert.Nil(t, eta)
}

func TestChooseClosestCrew_SingleCrewAtIncident(t *testing.T) {
	// Подготовка
	service, crewMock := newTestDispatchService(t)
	ctx := context.Background()
	crews := []models.Crew{
		{ID: 1, Name: "Alpha", BaseLat: 0, BaseLng: 0},
	}

	// Ожидания
	expectCacheMissAndFill(crewMock, ctx, crews)

	// Действие: инцидент ровно на базе экипажа
	name, eta, err := service.ChooseClosestCrew(ctx, 0, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Alpha", name)
	require.NotNil(t, eta)
	assert.Equal(t, 0, *eta)
}

func TestChooseClosestCrew_PicksNearest(t *testing.T) {
	// Подготовка
	service, crewMock := newTestDispatchService(t)
	ctx := context.Background()
	// Один градус широты - примерно 111.2 км, поэтому базы выбраны так,
	// чтобы расстояния были примерно 10 км и 20 км
	crews := []models.Crew{
		{ID: 1, Name: "Far", BaseLat: 0.17987, BaseLng: 0},  // ~20 км
		{ID: 2, Name: "Near", BaseLat: 0.08993, BaseLng: 0}, // ~10 км
	}

	// Ожидания
	expectCacheMissAndFill(crewMock, ctx, crews)

	// Действие
	name, eta, err := service.ChooseClosestCrew(ctx, 0, 0)

	// Проверки: ближний экипаж, ETA = round(10/50*60) = 12 минут
	require.NoError(t, err)
	assert.Equal(t, "Near", name)
	require.NotNil(t, eta)
	assert.Equal(t, 12, *eta)
}

func TestChooseClosestCrew_TieBrokenByLowestID(t *testing.T) {
	// Подготовка
	service, crewMock := newTestDispatchService(t)
	ctx := context.Background()
	// Две базы в одной точке: расстояния строго равны
	crews := []models.Crew{
		{ID: 7, Name: "Bravo", BaseLat: 1, BaseLng: 1},
		{ID: 3, Name: "Alpha", BaseLat: 1, BaseLng: 1},
	}

	// Ожидания
	expectCacheMissAndFill(crewMock, ctx, crews)

	// Действие
	name, _, err := service.ChooseClosestCrew(ctx, 0, 0)

	// Проверки: при равных расстояниях побеждает меньший id
	require.NoError(t, err)
	assert.Equal(t, "Alpha", name)
}

func TestChooseClosestCrew_FromCache(t *testing.T) {
	// Подготовка
	service, crewMock := newTestDispatchService(t)
	ctx := context.Background()
	crews := []models.Crew{
		{ID: 1, Name: "Cached", BaseLat: 0, BaseLng: 0},
	}

	// Ожидания: попадание в кэш, БД не трогаем
	crewMock.EXPECT().GetCrewsFromCache(ctx).Return(crews, nil).Times(1)
	crewMock.EXPECT().ListCrews(gomock.Any()).Times(0)

	// Действие
	name, _, err := service.ChooseClosestCrew(ctx, 0, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Cached", name)
}

func TestChooseClosestCrew_CacheFailureFallsBackToDB(t *testing.T) {
	// Подготовка
	service, crewMock := newTestDispatchService(t)
	ctx := context.Background()
	crews := []models.Crew{
		{ID: 1, Name: "Alpha", BaseLat: 0, BaseLng: 0},
	}
	cacheError := fmt.Errorf("redis недоступен")

	// Ожидания: сбой кэша деградирует к чтению из БД
	crewMock.EXPECT().GetCrewsFromCache(ctx).Return(nil, cacheError).Times(1)
	crewMock.EXPECT().ListCrews(ctx).Return(crews, nil).Times(1)
	crewMock.EXPECT().SetCrewsCache(ctx, crews).Return(nil).Times(1)

	// Действие
	name, _, err := service.ChooseClosestCrew(ctx, 0, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Alpha", name)
}

func TestChooseClosestCrew_StorageError(t *testing.T) {
	// Подготовка
	service, crewMock := newTestDispatchService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("бд недоступна")

	// Ожидания
	crewMock.EXPECT().GetCrewsFromCache(ctx).Return(nil, nil).Times(1)
	crewMock.EXPECT().ListCrews(ctx).Return(nil, repoError).Times(1)

	// Действие
	name, eta, err := service.ChooseClosestCrew(ctx, 0, 0)

	// Проверки: недоступность каталога - ошибка, в отличие от пустого каталога
	require.Error(t, err)
	assert.Empty(t, name)
	assert.Nil(t, eta)
	assert.ErrorContains(t, err, "could not load crews")
}

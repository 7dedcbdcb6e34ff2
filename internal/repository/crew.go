package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_intake_system/internal/apperrors"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/service"
)

const (
	crewCacheKey = "crews:all"
	crewCacheTTL = 5 * time.Minute
)

type CrewRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewCrewRepository(db *pgxpool.Pool, redisClient *redis.Client) service.CrewRepository {
	return &CrewRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ListCrews возвращает полный каталог экипажей из БД.
// Пустой каталог - валидный результат, а не ошибка.
func (r *CrewRepository) ListCrews(ctx context.Context) ([]models.Crew, error) {
	query := `
		SELECT id, name, base_lat, base_lng
		FROM crews;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crews: %w: %w", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	crews := make([]models.Crew, 0)
	for rows.Next() {
		var crew models.Crew
		if err := rows.Scan(&crew.ID, &crew.Name, &crew.BaseLat, &crew.BaseLng); err != nil {
			return nil, fmt.Errorf("failed to scan crew row: %w", err)
		}
		crews = append(crews, crew)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error crew list iteration: %w: %w", apperrors.ErrStorage, err)
	}
	return crews, nil
}

// GetCrewsFromCache пытается получить каталог экипажей из Redis.
// Промах кэша возвращает (nil, nil).
func (r *CrewRepository) GetCrewsFromCache(ctx context.Context) ([]models.Crew, error) {
	val, err := r.redisClient.Get(ctx, crewCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get crews from cache: %w", err)
	}

	crews := []models.Crew{}
	if err := json.Unmarshal(val, &crews); err != nil {
		return nil, fmt.Errorf("failed to unmarshal crews from cache: %w", err)
	}
	return crews, nil
}

// SetCrewsCache сохраняет каталог экипажей в Redis
func (r *CrewRepository) SetCrewsCache(ctx context.Context, crews []models.Crew) error {
	val, err := json.Marshal(crews)
	if err != nil {
		return fmt.Errorf("failed to marshal crews for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, crewCacheKey, val, crewCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set crews in cache: %w", err)
	}
	return nil
}

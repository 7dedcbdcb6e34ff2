package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/sos_intake_system/internal/apperrors"
	"github.com/shenikar/sos_intake_system/internal/models"
	"github.com/shenikar/sos_intake_system/internal/service"
)

type CaseRepository struct {
	db *pgxpool.Pool
}

func NewCaseRepository(db *pgxpool.Pool) service.CaseRepository {
	return &CaseRepository{db: db}
}

const caseColumns = `id, phone, raw_msg, postcode, people, needs, lat, lng, crew, eta, reply, status, ts`

// Create создает новую запись о кейсе. Координаты, экипаж и ETA
// на этом этапе отсутствуют, статус и время создания выставляет БД.
func (r *CaseRepository) Create(ctx context.Context, c *models.Case) error {
	needsJSON, err := json.Marshal(c.Needs)
	if err != nil {
		return fmt.Errorf("failed to marshal case needs: %w", err)
	}

	query := `
		INSERT INTO cases (phone, raw_msg, postcode, people, needs, reply)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, crew, status, ts;
	`
	err = r.db.QueryRow(ctx, query,
		c.Phone,
		c.RawMsg,
		c.Postcode,
		c.People,
		needsJSON,
		c.Reply,
	).Scan(&c.ID, &c.CrewName, &c.Status, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create case: %w: %w", apperrors.ErrStorage, err)
	}
	return nil
}

// AttachLocationAndCrew записывает координаты, экипаж и ETA в существующий кейс.
// Повторный вызов с теми же значениями безвреден: последняя запись побеждает.
func (r *CaseRepository) AttachLocationAndCrew(ctx context.Context, id int64, lat, lng float64, crewName string, etaMinutes *int) error {
	query := `
		UPDATE cases SET
			lat = $1,
			lng = $2,
			crew = $3,
			eta = $4
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, lat, lng, crewName, etaMinutes, id)
	if err != nil {
		return fmt.Errorf("failed to attach location and crew: %w: %w", apperrors.ErrStorage, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("case with id %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// Close переводит кейс в статус closed. Возвращает false, если строка
// не была изменена (кейс не существует или уже закрыт).
func (r *CaseRepository) Close(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE cases SET status = $1
		WHERE id = $2 AND status <> $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, models.StatusClosed, id)
	if err != nil {
		return false, fmt.Errorf("failed to close case: %w: %w", apperrors.ErrStorage, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// GetByID возвращает кейс по его id
func (r *CaseRepository) GetByID(ctx context.Context, id int64) (*models.Case, error) {
	query := fmt.Sprintf(`SELECT %s FROM cases WHERE id = $1;`, caseColumns)

	c, err := scanCase(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("case with id %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get case by id: %w: %w", apperrors.ErrStorage, err)
	}
	return c, nil
}

// ListRecent возвращает последние кейсы в порядке убывания id.
// Это доска текущего состояния, пагинации нет - одна страница размером limit.
func (r *CaseRepository) ListRecent(ctx context.Context, limit int, openOnly bool) ([]*models.Case, error) {
	query := fmt.Sprintf(`SELECT %s FROM cases ORDER BY id DESC LIMIT $1;`, caseColumns)
	if openOnly {
		query = fmt.Sprintf(`SELECT %s FROM cases WHERE status = '%s' ORDER BY id DESC LIMIT $1;`, caseColumns, models.StatusOpen)
	}

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent cases: %w: %w", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	cases := make([]*models.Case, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w: %w", apperrors.ErrStorage, err)
	}
	return cases, nil
}

// scanCase читает одну строку таблицы cases в модель
func scanCase(row pgx.Row) (*models.Case, error) {
	c := &models.Case{}
	var needsJSON []byte
	err := row.Scan(
		&c.ID,
		&c.Phone,
		&c.RawMsg,
		&c.Postcode,
		&c.People,
		&needsJSON,
		&c.Latitude,
		&c.Longitude,
		&c.CrewName,
		&c.EtaMinutes,
		&c.Reply,
		&c.Status,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(needsJSON) > 0 {
		if err := json.Unmarshal(needsJSON, &c.Needs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal case needs: %w", err)
		}
	}
	if c.Needs == nil {
		c.Needs = []string{}
	}
	return c, nil
}

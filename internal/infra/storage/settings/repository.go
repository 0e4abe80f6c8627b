package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/salonora/booking-service/internal/domain"
	"github.com/salonora/booking-service/pkg/dbmetrics"
	"github.com/salonora/booking-service/pkg/psqlbuilder"
)

// Настройки салона хранятся одной строкой с фиксированным ключом
const settingsRowID = 1

// Repository репозиторий настроек салона
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get читает текущие настройки салона
// Возвращает ErrSettingsNotFound, если строка ещё не создана
func (r *Repository) Get(ctx context.Context) (*domain.SalonSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"work_start",
		"work_end",
		"slot_duration_minutes",
		"updated_at",
	).
		From("salon_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.SalonSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.WorkHours.Start,
		&settings.WorkHours.End,
		&settings.SlotDurationMinutes,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Update сохраняет настройки салона (upsert единственной строки)
func (r *Repository) Update(ctx context.Context, settings domain.SalonSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salon_settings").
		Columns("id", "work_start", "work_end", "slot_duration_minutes", "updated_at").
		Values(settingsRowID, settings.WorkHours.Start, settings.WorkHours.End, settings.SlotDurationMinutes, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET work_start = EXCLUDED.work_start, work_end = EXCLUDED.work_end, slot_duration_minutes = EXCLUDED.slot_duration_minutes, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

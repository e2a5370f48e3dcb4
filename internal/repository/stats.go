package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

type OverviewStats struct {
	TotalTrips           int
	UpcomingTrips        int
	PastTrips            int
	TotalDays            int
	DistinctDestinations int
	TotalBudget          int64
}

type DestinationStats struct {
	Destination string
	Trips       int
	TotalBudget int64
	LastVisit   time.Time
}

// NewStatsRepository создает репозиторий статистики.
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// Overview возвращает сводную статистику по поездкам пользователя.
func (r *StatsRepository) Overview(ctx context.Context, userID uuid.UUID) (OverviewStats, error) {
	var stats OverviewStats

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) AS total_trips,
		        COUNT(*) FILTER (WHERE end_date >= CURRENT_DATE) AS upcoming_trips,
		        COUNT(*) FILTER (WHERE end_date < CURRENT_DATE) AS past_trips,
		        COALESCE(SUM(end_date - start_date + 1), 0) AS total_days,
		        COUNT(DISTINCT destination) AS distinct_destinations,
		        COALESCE(SUM((budget->>'total')::bigint), 0) AS total_budget
		 FROM trips
		 WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalTrips, &stats.UpcomingTrips, &stats.PastTrips,
		&stats.TotalDays, &stats.DistinctDestinations, &stats.TotalBudget)
	if err != nil {
		return stats, err
	}

	return stats, nil
}

// TopDestinations возвращает направления пользователя по числу поездок.
func (r *StatsRepository) TopDestinations(ctx context.Context, userID uuid.UUID, limit int) ([]DestinationStats, error) {
	if limit <= 0 {
		return nil, ErrInvalid
	}

	rows, err := r.db.Query(ctx,
		`SELECT destination,
		        COUNT(*) AS trips,
		        COALESCE(SUM((budget->>'total')::bigint), 0) AS total_budget,
		        MAX(end_date) AS last_visit
		 FROM trips
		 WHERE user_id = $1
		 GROUP BY destination
		 ORDER BY trips DESC, last_visit DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]DestinationStats, 0)
	for rows.Next() {
		var row DestinationStats
		err := rows.Scan(&row.Destination, &row.Trips, &row.TotalBudget, &row.LastVisit)
		if err != nil {
			return nil, err
		}
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

package medication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a medication or log row does not exist
// for the requesting user.
var ErrNotFound = errors.New("medication not found")

type Medication struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	TimeOfDay []string  `json:"time_of_day"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type IntakeLog struct {
	ID            string     `json:"id"`
	MedicationID  string     `json:"medication_id"`
	Taken         bool       `json:"taken"`
	ScheduledTime string     `json:"scheduled_time"`
	TakenAt       *time.Time `json:"taken_at"`
	LogDate       string     `json:"log_date"`
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Create(ctx context.Context, m *Medication) error {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO medications (user_id, name, dosage, frequency, time_of_day, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		m.UserID, m.Name, m.Dosage, m.Frequency, m.TimeOfDay, m.Notes)
	if err := row.Scan(&m.ID, &m.CreatedAt); err != nil {
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, userID string) ([]Medication, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, name, dosage, frequency, time_of_day, notes, created_at
		FROM medications
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	meds := []Medication{}
	for rows.Next() {
		var m Medication
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency, &m.TimeOfDay, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

func (s *Store) Update(ctx context.Context, m *Medication) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE medications
		SET name = $1, dosage = $2, frequency = $3, time_of_day = $4, notes = $5
		WHERE id = $6 AND user_id = $7`,
		m.Name, m.Dosage, m.Frequency, m.TimeOfDay, m.Notes, m.ID, m.UserID)
	if err != nil {
		return fmt.Errorf("update medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the medication and its intake logs in one transaction.
func (s *Store) Delete(ctx context.Context, userID, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM medication_logs WHERE medication_id = $1`, id); err != nil {
		return fmt.Errorf("delete medication logs: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return tx.Commit(ctx)
}

// UpsertLog records whether a scheduled dose was taken. One row exists
// per medication, date and scheduled slot; toggling the same slot twice
// updates that row instead of duplicating it.
func (s *Store) UpsertLog(ctx context.Context, l *IntakeLog) error {
	var takenAt *time.Time
	if l.Taken {
		now := time.Now().UTC()
		takenAt = &now
	}
	row := s.pool.QueryRow(ctx, `
		INSERT INTO medication_logs (medication_id, log_date, scheduled_time, taken, taken_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (medication_id, log_date, scheduled_time)
		DO UPDATE SET taken = EXCLUDED.taken, taken_at = EXCLUDED.taken_at
		RETURNING id, taken_at`,
		l.MedicationID, l.LogDate, l.ScheduledTime, l.Taken, takenAt)
	if err := row.Scan(&l.ID, &l.TakenAt); err != nil {
		return fmt.Errorf("upsert medication log: %w", err)
	}
	return nil
}

// LogsForDate returns the user's intake logs for one calendar day,
// joined through the medications table so logs of other users never
// leak.
func (s *Store) LogsForDate(ctx context.Context, userID, date string) ([]IntakeLog, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT l.id, l.medication_id, l.taken, l.scheduled_time, l.taken_at, l.log_date
		FROM medication_logs l
		JOIN medications m ON m.id = l.medication_id
		WHERE m.user_id = $1 AND l.log_date = $2
		ORDER BY l.scheduled_time`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list medication logs: %w", err)
	}
	defer rows.Close()

	logs := []IntakeLog{}
	for rows.Next() {
		var l IntakeLog
		if err := rows.Scan(&l.ID, &l.MedicationID, &l.Taken, &l.ScheduledTime, &l.TakenAt, &l.LogDate); err != nil {
			return nil, fmt.Errorf("scan medication log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *Store) owns(ctx context.Context, userID, medicationID string) (bool, error) {
	var id string
	err := s.pool.QueryRow(ctx, `SELECT id FROM medications WHERE id = $1 AND user_id = $2`, medicationID, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

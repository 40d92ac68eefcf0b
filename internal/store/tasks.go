package store

import (
	"database/sql"
	"fmt"

	"github.com/sarfrazcodes/tracker-dashboard/internal/task"
)

const taskColumns = `id, user_id, activity, task_date, planned_minutes,
	actual_minutes, is_completed, category, priority, notes, created_at`

// InsertTask validates, normalizes, and inserts a task record. Malformed
// records (missing or unparseable task date) are rejected here so they can
// never reach an aggregation snapshot.
func (db *DB) InsertTask(r *task.Record) error {
	r.Normalize()
	if err := r.Validate(); err != nil {
		return err
	}

	_, err := db.conn.Exec(
		`INSERT INTO tasks
		(id, user_id, activity, task_date, planned_minutes, actual_minutes,
		 is_completed, category, priority, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.Activity, r.TaskDate, r.PlannedMinutes, r.ActualMinutes,
		r.IsCompleted, r.Category, r.Priority, r.Notes, r.CreatedAt,
	)
	return err
}

// DeleteTask removes a task by ID. Deleting an unknown ID is an error.
func (db *DB) DeleteTask(userID, id string) error {
	res, err := db.conn.Exec("DELETE FROM tasks WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no task with id %s", id)
	}
	return nil
}

// CompleteTask marks a task completed with the given actual minutes.
func (db *DB) CompleteTask(userID, id string, actualMinutes int) error {
	if actualMinutes < 0 {
		actualMinutes = 0
	}
	res, err := db.conn.Exec(
		"UPDATE tasks SET is_completed = 1, actual_minutes = ? WHERE id = ? AND user_id = ?",
		actualMinutes, id, userID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no task with id %s", id)
	}
	return nil
}

// ListTasks returns one user's records, oldest task date first. A non-empty
// sinceDayKey bounds the history to task_date >= sinceDayKey; an empty key
// returns the full history.
func (db *DB) ListTasks(userID, sinceDayKey string) ([]task.Record, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = ?"
	args := []any{userID}
	if sinceDayKey != "" {
		query += " AND task_date >= ?"
		args = append(args, sinceDayKey)
	}
	query += " ORDER BY task_date, created_at"

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

// TasksForDay returns one user's records for a single day key.
func (db *DB) TasksForDay(userID, dayKey string) ([]task.Record, error) {
	rows, err := db.conn.Query(
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = ? AND task_date = ? ORDER BY created_at",
		userID, dayKey,
	)
	if err != nil {
		return nil, err
	}
	return scanTasks(rows)
}

// GetTask returns a single record by ID, or nil if absent.
func (db *DB) GetTask(userID, id string) (*task.Record, error) {
	row := db.conn.QueryRow(
		"SELECT "+taskColumns+" FROM tasks WHERE id = ? AND user_id = ?",
		id, userID,
	)
	var r task.Record
	err := row.Scan(
		&r.ID, &r.UserID, &r.Activity, &r.TaskDate, &r.PlannedMinutes,
		&r.ActualMinutes, &r.IsCompleted, &r.Category, &r.Priority,
		&r.Notes, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanTasks(rows *sql.Rows) ([]task.Record, error) {
	defer func() { _ = rows.Close() }()

	var records []task.Record
	for rows.Next() {
		var r task.Record
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.Activity, &r.TaskDate, &r.PlannedMinutes,
			&r.ActualMinutes, &r.IsCompleted, &r.Category, &r.Priority,
			&r.Notes, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

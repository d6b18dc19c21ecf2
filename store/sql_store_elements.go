// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/satisfaction-polygon/catalog"
	"github.com/danielhkuo/satisfaction-polygon/models"
)

// SyncCatalog upserts catalog elements by name and replaces their question
// pools. Elements dropped from the catalog stay in place so existing links
// remain valid.
func (s *SQLStore) SyncCatalog(ctx context.Context, c catalog.Catalog) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, element := range c.Elements {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO element (name) VALUES ($1)
				ON CONFLICT (name) DO NOTHING
			`, element.Name)
			if err != nil {
				return fmt.Errorf("failed to insert element %q: %w", element.Name, err)
			}

			var elementID int64
			err = tx.QueryRowContext(ctx, `SELECT id FROM element WHERE name = $1`, element.Name).Scan(&elementID)
			if err != nil {
				return fmt.Errorf("failed to query element %q: %w", element.Name, err)
			}

			if _, err := tx.ExecContext(ctx, `DELETE FROM element_question WHERE element_id = $1`, elementID); err != nil {
				return fmt.Errorf("failed to clear questions of %q: %w", element.Name, err)
			}

			for position, question := range element.Questions {
				_, err := tx.ExecContext(ctx, `
					INSERT INTO element_question (element_id, position, text)
					VALUES ($1, $2, $3)
				`, elementID, position, question)
				if err != nil {
					return fmt.Errorf("failed to insert question of %q: %w", element.Name, err)
				}
			}
		}
		return nil
	})
}

func (s *SQLStore) ListElements(ctx context.Context) ([]models.Element, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM element ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query elements: %w", err)
	}
	defer rows.Close()

	return scanElements(rows)
}

func (s *SQLStore) LinkToUser(ctx context.Context, userID int64, elementIDs []int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := ensureElementsExist(ctx, tx, elementIDs); err != nil {
			return err
		}
		return insertUserElements(ctx, tx, userID, elementIDs)
	})
}

func (s *SQLStore) ReplaceForUser(ctx context.Context, userID int64, elementIDs []int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := ensureElementsExist(ctx, tx, elementIDs); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM user_element WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("failed to unlink elements: %w", err)
		}

		return insertUserElements(ctx, tx, userID, elementIDs)
	})
}

func (s *SQLStore) UserElements(ctx context.Context, userID int64) ([]models.Element, error) {
	return userElements(ctx, s.db, userID)
}

func (s *SQLStore) UserQuestionPools(ctx context.Context, userID int64) ([]models.ElementQuestions, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.name, q.text
		FROM user_element ue
		JOIN element e ON e.id = ue.element_id
		LEFT JOIN element_question q ON q.element_id = e.id
		WHERE ue.user_id = $1
		ORDER BY e.id, q.position
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query question pools: %w", err)
	}
	defer rows.Close()

	pools := []models.ElementQuestions{}
	for rows.Next() {
		var element models.Element
		var text sql.NullString
		if err := rows.Scan(&element.ID, &element.Name, &text); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		// Rows arrive grouped by element
		if len(pools) == 0 || pools[len(pools)-1].ID != element.ID {
			pools = append(pools, models.ElementQuestions{Element: element, Questions: []string{}})
		}
		if text.Valid {
			last := &pools[len(pools)-1]
			last.Questions = append(last.Questions, text.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}

	return pools, nil
}

func userElements(ctx context.Context, q queryer, userID int64) ([]models.Element, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT e.id, e.name
		FROM user_element ue
		JOIN element e ON e.id = ue.element_id
		WHERE ue.user_id = $1
		ORDER BY e.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user elements: %w", err)
	}
	defer rows.Close()

	return scanElements(rows)
}

func scanElements(rows *sql.Rows) ([]models.Element, error) {
	elements := []models.Element{}
	for rows.Next() {
		var element models.Element
		if err := rows.Scan(&element.ID, &element.Name); err != nil {
			return nil, fmt.Errorf("failed to scan element: %w", err)
		}
		elements = append(elements, element)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate elements: %w", err)
	}
	return elements, nil
}

func ensureElementsExist(ctx context.Context, tx *sql.Tx, elementIDs []int64) error {
	for _, id := range elementIDs {
		var exists bool
		err := tx.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM element WHERE id = $1)
		`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check element %d: %w", id, err)
		}
		if !exists {
			return fmt.Errorf("element %d: %w", id, ErrUnknownElement)
		}
	}
	return nil
}

func insertUserElements(ctx context.Context, tx *sql.Tx, userID int64, elementIDs []int64) error {
	for _, id := range elementIDs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_element (user_id, element_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, userID, id)
		if err != nil {
			return fmt.Errorf("failed to link element %d: %w", id, err)
		}
	}
	return nil
}

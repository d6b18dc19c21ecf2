// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/satisfaction-polygon/models"
	"github.com/danielhkuo/satisfaction-polygon/survey"
)

func (s *SQLStore) CreatePolygon(ctx context.Context, userID int64, entries []models.ScoreEntry) (models.Polygon, error) {
	var polygon models.Polygon

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		elements, err := userElements(ctx, tx, userID)
		if err != nil {
			return err
		}

		result := survey.Evaluate(elements, entries)

		polygon = models.Polygon{
			Date:     time.Now().UTC(),
			Grade:    result.Grade,
			Elements: make([]models.PolygonElement, 0, len(result.Scores)),
		}

		err = tx.QueryRowContext(ctx, `
			INSERT INTO polygon (date, grade)
			VALUES ($1, $2)
			RETURNING id
		`, polygon.Date, polygon.Grade).Scan(&polygon.ID)
		if err != nil {
			return fmt.Errorf("failed to insert polygon: %w", err)
		}

		for _, score := range result.Scores {
			pe := models.PolygonElement{
				PolygonID: polygon.ID,
				Name:      survey.PolygonElementName(score.Element.Name, polygon.ID),
				Score:     score.Score,
			}
			err := tx.QueryRowContext(ctx, `
				INSERT INTO polygon_element (polygon_id, name, score)
				VALUES ($1, $2, $3)
				RETURNING id
			`, pe.PolygonID, pe.Name, pe.Score).Scan(&pe.ID)
			if err != nil {
				return fmt.Errorf("failed to insert polygon element: %w", err)
			}
			polygon.Elements = append(polygon.Elements, pe)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_polygon (user_id, polygon_id)
			VALUES ($1, $2)
		`, userID, polygon.ID)
		if err != nil {
			return fmt.Errorf("failed to link polygon to user: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.Polygon{}, err
	}

	return polygon, nil
}

func (s *SQLStore) ListPolygons(ctx context.Context, userID int64) ([]models.Polygon, error) {
	var polygons []models.Polygon

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		polygons, err = userPolygons(ctx, tx, userID)
		if err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT pe.id, pe.polygon_id, pe.name, pe.score
			FROM polygon_element pe
			JOIN user_polygon up ON up.polygon_id = pe.polygon_id
			WHERE up.user_id = $1
			ORDER BY pe.polygon_id, pe.id
		`, userID)
		if err != nil {
			return fmt.Errorf("failed to query polygon elements: %w", err)
		}
		defer rows.Close()

		children, err := scanPolygonElements(rows)
		if err != nil {
			return err
		}

		index := make(map[int64]int, len(polygons))
		for i, p := range polygons {
			index[p.ID] = i
		}
		for _, pe := range children {
			if i, ok := index[pe.PolygonID]; ok {
				polygons[i].Elements = append(polygons[i].Elements, pe)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return polygons, nil
}

func (s *SQLStore) GetPolygon(ctx context.Context, userID, polygonID int64) (models.Polygon, error) {
	var polygon models.Polygon

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT p.id, p.date, p.grade
			FROM polygon p
			JOIN user_polygon up ON up.polygon_id = p.id
			WHERE p.id = $1 AND up.user_id = $2
		`, polygonID, userID).Scan(&polygon.ID, &polygon.Date, &polygon.Grade)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query polygon: %w", err)
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT id, polygon_id, name, score
			FROM polygon_element
			WHERE polygon_id = $1
			ORDER BY id
		`, polygonID)
		if err != nil {
			return fmt.Errorf("failed to query polygon elements: %w", err)
		}
		defer rows.Close()

		polygon.Elements, err = scanPolygonElements(rows)
		return err
	})
	if err != nil {
		return models.Polygon{}, err
	}

	return polygon, nil
}

func (s *SQLStore) Neighbors(ctx context.Context, polygonID, ownerID int64) (models.Neighbors, error) {
	var n models.Neighbors

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, `
			SELECT EXISTS(SELECT 1 FROM polygon WHERE id = $1)
		`, polygonID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check polygon: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		prevQuery, nextQuery := globalPrevQuery, globalNextQuery
		args := []any{polygonID}
		if ownerID != 0 {
			prevQuery, nextQuery = ownedPrevQuery, ownedNextQuery
			args = append(args, ownerID)
		}

		if n.Previous, err = optionalID(ctx, tx, prevQuery, args...); err != nil {
			return fmt.Errorf("failed to query previous polygon: %w", err)
		}
		if n.Next, err = optionalID(ctx, tx, nextQuery, args...); err != nil {
			return fmt.Errorf("failed to query next polygon: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Neighbors{}, err
	}

	return n, nil
}

const (
	globalPrevQuery = `SELECT id FROM polygon WHERE id < $1 ORDER BY id DESC LIMIT 1`
	globalNextQuery = `SELECT id FROM polygon WHERE id > $1 ORDER BY id ASC LIMIT 1`

	ownedPrevQuery = `
		SELECT p.id FROM polygon p
		JOIN user_polygon up ON up.polygon_id = p.id
		WHERE p.id < $1 AND up.user_id = $2
		ORDER BY p.id DESC LIMIT 1`
	ownedNextQuery = `
		SELECT p.id FROM polygon p
		JOIN user_polygon up ON up.polygon_id = p.id
		WHERE p.id > $1 AND up.user_id = $2
		ORDER BY p.id ASC LIMIT 1`
)

// optionalID returns nil when the query matches no row
func optionalID(ctx context.Context, q queryer, query string, args ...any) (*int64, error) {
	var id int64
	err := q.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func userPolygons(ctx context.Context, q queryer, userID int64) ([]models.Polygon, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT p.id, p.date, p.grade
		FROM polygon p
		JOIN user_polygon up ON up.polygon_id = p.id
		WHERE up.user_id = $1
		ORDER BY p.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query polygons: %w", err)
	}
	defer rows.Close()

	polygons := []models.Polygon{}
	for rows.Next() {
		p := models.Polygon{Elements: []models.PolygonElement{}}
		if err := rows.Scan(&p.ID, &p.Date, &p.Grade); err != nil {
			return nil, fmt.Errorf("failed to scan polygon: %w", err)
		}
		polygons = append(polygons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polygons: %w", err)
	}

	return polygons, nil
}

func scanPolygonElements(rows *sql.Rows) ([]models.PolygonElement, error) {
	elements := []models.PolygonElement{}
	for rows.Next() {
		var pe models.PolygonElement
		if err := rows.Scan(&pe.ID, &pe.PolygonID, &pe.Name, &pe.Score); err != nil {
			return nil, fmt.Errorf("failed to scan polygon element: %w", err)
		}
		elements = append(elements, pe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polygon elements: %w", err)
	}
	return elements, nil
}

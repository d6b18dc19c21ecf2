// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Grade values stored on a polygon
const (
	GradeUngraded = 0
	GradeHigh     = 1
	GradeMedium   = 2
	GradeLow      = 3
)

// Navigation scope values
const (
	ScopeGlobal = "global"
	ScopeUser   = "user"
)

// Request types

type RegisterUserRequest struct {
	Nickname string `json:"nickname"`
}

// Elements is a pointer so a missing field can be told apart from an empty list
type SetElementsRequest struct {
	Elements *[]int64 `json:"elements"`
}

// ScoreEntry is one item of the POST /create body
type ScoreEntry struct {
	ID    int64 `json:"id"`
	Score int   `json:"score"`
}

// Response types

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RegisterUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
	Token   string `json:"token"`
}

type ListElementsResponse struct {
	Success  bool      `json:"success"`
	Elements []Element `json:"elements"`
}

type QuestionsResponse struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	Elements map[string][]string `json:"elements"`
}

type CreatePolygonResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	PolygonID int64  `json:"polygon_id"`
	Grade     int    `json:"grade"`
}

type ReadAllResponse struct {
	Success  bool      `json:"success"`
	Polygons []Polygon `json:"polygons"`
}

// ReadPolygonResponse navigation flags: End is true when an
// older polygon exists, Start is true when a newer one exists.
type ReadPolygonResponse struct {
	Success  bool    `json:"success"`
	Polygon  Polygon `json:"polygon"`
	Start    bool    `json:"start"`
	End      bool    `json:"end"`
	Previous *int64  `json:"previous,omitempty"`
	Next     *int64  `json:"next,omitempty"`
}

// Domain types

type User struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"created_at"`
}

type Element struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ElementQuestions is an element together with its full question pool
type ElementQuestions struct {
	Element
	Questions []string `json:"questions"`
}

type Polygon struct {
	ID       int64            `json:"id"`
	Date     time.Time        `json:"date"`
	Grade    int              `json:"grade"`
	Elements []PolygonElement `json:"elements"`
}

type PolygonElement struct {
	ID        int64  `json:"id"`
	PolygonID int64  `json:"polygon_id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
}

// Neighbors holds the adjacent polygon ids by id ordering
type Neighbors struct {
	Previous *int64
	Next     *int64
}

// HasPrevious reports whether an older polygon exists ("end" on the wire)
func (n Neighbors) HasPrevious() bool { return n.Previous != nil }

// HasNext reports whether a newer polygon exists ("start" on the wire)
func (n Neighbors) HasNext() bool { return n.Next != nil }

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

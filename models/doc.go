// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - RegisterUserRequest: nickname
  - SetElementsRequest: elements (list of element ids)
  - ScoreEntry: one {id, score} pair of the create body

# Response Types

Every response carries a success flag:

  - MessageResponse: success, message
  - RegisterUserResponse: user_id, token
  - ListElementsResponse: elements
  - QuestionsResponse: elements (name -> sampled questions)
  - CreatePolygonResponse: polygon_id, grade
  - ReadAllResponse: polygons
  - ReadPolygonResponse: polygon, start, end, previous, next
  - ErrorResponse: success=false, error, message

# Domain Types

  - User: id and nickname
  - Element: survey category
  - ElementQuestions: element plus its question pool
  - Polygon: one graded survey submission
  - PolygonElement: per-element score line of a polygon
  - Neighbors: adjacent polygon ids

# Grades

	GradeUngraded = 0
	GradeHigh     = 1
	GradeMedium   = 2
	GradeLow      = 3
*/
package models

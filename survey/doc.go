// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey holds the storage-independent survey logic.

# Question Sampling

Each element owns a pool of questions. A client is shown
QuestionsPerElement of them, drawn without replacement:

	questions, err := survey.SampleQuestions(pool, survey.QuestionsPerElement, nil)

Pools smaller than the sample size fail with ErrPoolTooSmall.

# Grading

Submitted scores are matched to the user's elements by id, summed, and
compared with the perfect score (elements × MaxElementScore):

	ratio > 2/3  → GradeHigh (1)
	ratio > 1/3  → GradeMedium (2)
	otherwise    → GradeLow (3)

A user without elements grades low.
*/
package survey

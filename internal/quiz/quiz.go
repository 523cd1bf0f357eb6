// Package quiz gates pending bonus rewards behind a short wellbeing survey.
package quiz

import (
	"fmt"

	"github.com/youthopia/engine/internal/domain"
)

// AnswerMode distinguishes single-choice from multi-select questions.
type AnswerMode string

const (
	AnswerSingle AnswerMode = "single"
	AnswerMulti  AnswerMode = "multi"
)

// Question is one survey question. Options are answered by value, not index.
type Question struct {
	ID      int        `json:"id"`
	Prompt  string     `json:"prompt"`
	Mode    AnswerMode `json:"mode"`
	Options []string   `json:"options"`
}

func (q Question) hasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// Answer holds a recorded response. Single-mode answers carry exactly one
// selection; multi-mode answers carry the selected set in pick order.
type Answer struct {
	Mode     AnswerMode `json:"mode"`
	Selected []string   `json:"selected"`
}

// Empty reports whether the answer has no selections.
func (a Answer) Empty() bool {
	return len(a.Selected) == 0
}

// Challenge is a sampled set of questions plus the responses recorded so far.
// Not safe for concurrent use; the owning game serializes access.
type Challenge struct {
	questions []Question
	answers   map[int]Answer
}

// DefaultSize is how many questions a challenge samples from the bank.
const DefaultSize = 3

// NewChallenge samples n distinct questions from the bank using the given
// random source (rng returns [0, bound)).
func NewChallenge(rng func(int) int, n int) *Challenge {
	if n <= 0 || n > len(bank) {
		n = DefaultSize
	}

	// Partial Fisher-Yates over a copy: the first n slots end up holding the
	// sample, without replacement.
	pool := make([]Question, len(bank))
	copy(pool, bank)
	for i := 0; i < n; i++ {
		j := i + rng(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return &Challenge{
		questions: pool[:n:n],
		answers:   make(map[int]Answer),
	}
}

// ChallengeFromIDs rebuilds a challenge over specific bank questions, used
// when restoring a persisted session. Recorded answers are not restored.
func ChallengeFromIDs(ids []int) (*Challenge, error) {
	questions := make([]Question, 0, len(ids))
	for _, id := range ids {
		q, ok := bankByID[id]
		if !ok {
			return nil, fmt.Errorf("%w: id %d", domain.ErrUnknownQuestion, id)
		}
		questions = append(questions, q)
	}
	return &Challenge{
		questions: questions,
		answers:   make(map[int]Answer),
	}, nil
}

// Questions returns the sampled questions in order.
func (c *Challenge) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionIDs returns the sampled question ids in order.
func (c *Challenge) QuestionIDs() []int {
	ids := make([]int, len(c.questions))
	for i, q := range c.questions {
		ids[i] = q.ID
	}
	return ids
}

// Choose records a selection for a question. Single-mode replaces any prior
// selection; multi-mode toggles the option's membership in the selected set.
func (c *Challenge) Choose(questionID int, option string) error {
	var question *Question
	for i := range c.questions {
		if c.questions[i].ID == questionID {
			question = &c.questions[i]
			break
		}
	}
	if question == nil {
		return fmt.Errorf("%w: id %d", domain.ErrUnknownQuestion, questionID)
	}
	if !question.hasOption(option) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidOption, option)
	}

	if question.Mode == AnswerSingle {
		c.answers[questionID] = Answer{Mode: AnswerSingle, Selected: []string{option}}
		return nil
	}

	answer := c.answers[questionID]
	answer.Mode = AnswerMulti
	for i, selected := range answer.Selected {
		if selected == option {
			answer.Selected = append(answer.Selected[:i], answer.Selected[i+1:]...)
			c.answers[questionID] = answer
			return nil
		}
	}
	answer.Selected = append(answer.Selected, option)
	c.answers[questionID] = answer
	return nil
}

// AnswerFor returns the recorded answer for a question, if any.
func (c *Challenge) AnswerFor(questionID int) (Answer, bool) {
	a, ok := c.answers[questionID]
	if !ok || a.Empty() {
		return Answer{}, false
	}
	return a, true
}

// Unanswered returns ids of questions with no selection yet, in order.
func (c *Challenge) Unanswered() []int {
	var ids []int
	for _, q := range c.questions {
		if a, ok := c.answers[q.ID]; !ok || a.Empty() {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// Complete reports whether every question has at least one selection. The
// gate checks completeness only; responses are never graded.
func (c *Challenge) Complete() bool {
	return len(c.Unanswered()) == 0
}

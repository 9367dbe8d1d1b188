package voting

import "fmt"

// BudgetKind names the bound a vote set violated.
type BudgetKind string

const (
	BudgetUp   BudgetKind = "up"
	BudgetDown BudgetKind = "down"
)

// BudgetExceededError reports that a vote set's totals exceed the voter's
// budget. Kind and Limit carry enough structure for the caller to render an
// actionable message.
type BudgetExceededError struct {
	Kind  BudgetKind
	Limit int
}

func (e *BudgetExceededError) Error() string {
	noun := "upvote"
	if e.Kind == BudgetDown {
		noun = "downvote"
	}
	if e.Limit == 1 {
		return fmt.Sprintf("you can only cast 1 %s total", noun)
	}
	return fmt.Sprintf("you can only cast %d %ss total", e.Limit, noun)
}

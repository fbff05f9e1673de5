package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/fchant/daybrain/internal/model"
)

// QuickAdd parses inline shorthand out of free text and creates the task.
//
//	!today !tomorrow   due date
//	!<N>d              due in N days
//	!high !low         priority
//
// Whatever is left over becomes the title.
func (s *Store) QuickAdd(text string) (model.Task, error) {
	draft := parseQuickAdd(text, s.now())
	return s.AddTask(draft)
}

func parseQuickAdd(text string, now time.Time) model.TaskDraft {
	var draft model.TaskDraft
	var titleParts []string

	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, "!") {
			titleParts = append(titleParts, word)
			continue
		}

		token := strings.ToLower(strings.TrimPrefix(word, "!"))
		switch {
		case token == "today":
			draft.DueDate = relativeDate(now, 0)
		case token == "tomorrow":
			draft.DueDate = relativeDate(now, 1)
		case token == "high":
			draft.Priority = model.PriorityHigh
		case token == "low":
			draft.Priority = model.PriorityLow
		default:
			if days, ok := parseRelativeDays(token); ok {
				draft.DueDate = relativeDate(now, days)
			} else {
				// Unrecognized token stays in the title
				titleParts = append(titleParts, word)
			}
		}
	}

	draft.Title = strings.Join(titleParts, " ")
	return draft
}

// parseRelativeDays matches the <N>d shorthand
func parseRelativeDays(token string) (int, bool) {
	if !strings.HasSuffix(token, "d") {
		return 0, false
	}
	days, err := strconv.Atoi(strings.TrimSuffix(token, "d"))
	if err != nil || days < 0 {
		return 0, false
	}
	return days, true
}

func relativeDate(now time.Time, days int) *time.Time {
	d := model.DateOf(now).AddDate(0, 0, days)
	return &d
}

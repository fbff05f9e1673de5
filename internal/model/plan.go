package model

// TimeBlock is a named interval within a daily plan. TaskID predates
// TaskIDs and is still read on import; new blocks use TaskIDs only.
type TimeBlock struct {
	ID          string   `json:"id"`
	Start       string   `json:"start"` // HH:MM
	End         string   `json:"end"`   // HH:MM
	TaskID      *string  `json:"taskId,omitempty"`
	TaskIDs     []string `json:"taskIds,omitempty"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
}

// DailyPlan holds the ordered time blocks for one calendar date.
// The date string is the natural key; overlapping blocks are allowed.
type DailyPlan struct {
	Date   string      `json:"date"` // YYYY-MM-DD
	Blocks []TimeBlock `json:"blocks"`
}

// AllTaskIDs returns every task id on the block, folding the legacy
// single-task field into the current list form.
func (b *TimeBlock) AllTaskIDs() []string {
	var ids []string
	if b.TaskID != nil && *b.TaskID != "" {
		ids = append(ids, *b.TaskID)
	}
	for _, id := range b.TaskIDs {
		if b.TaskID == nil || id != *b.TaskID {
			ids = append(ids, id)
		}
	}
	return ids
}

package store

import (
	"fmt"
	"time"

	"github.com/fchant/daybrain/internal/model"
)

// PlanDateFormat is the natural key format for daily plans
const PlanDateFormat = "2006-01-02"

// DailyPlans returns a copy of every stored daily plan
func (s *Store) DailyPlans() []model.DailyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.DailyPlan(nil), s.plans...)
}

// PlanFor returns the plan for a calendar date, if one exists
func (s *Store) PlanFor(date string) (model.DailyPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.planIndex(date); i >= 0 {
		return s.plans[i], true
	}
	return model.DailyPlan{}, false
}

func (s *Store) planIndex(date string) int {
	for i := range s.plans {
		if s.plans[i].Date == date {
			return i
		}
	}
	return -1
}

// AddTimeBlock appends a block to the plan for date, creating the plan if
// needed. Overlapping blocks are allowed; double-booking is the user's call.
func (s *Store) AddTimeBlock(date string, block model.TimeBlock) (model.TimeBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validatePlanDate(date); err != nil {
		return model.TimeBlock{}, err
	}
	if err := validateBlockTimes(block); err != nil {
		return model.TimeBlock{}, err
	}

	block.ID = s.newID()
	i := s.planIndex(date)
	if i < 0 {
		s.plans = append(s.plans, model.DailyPlan{Date: date})
		i = len(s.plans) - 1
	}
	s.plans[i].Blocks = append(s.plans[i].Blocks, block)
	s.adapter.SaveDailyPlans(s.plans)
	return block, nil
}

// UpdateTimeBlock replaces the block with a matching id on the given date
func (s *Store) UpdateTimeBlock(date string, block model.TimeBlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateBlockTimes(block); err != nil {
		return err
	}

	i := s.planIndex(date)
	if i < 0 {
		return fmt.Errorf("no plan for %s", date)
	}
	for j := range s.plans[i].Blocks {
		if s.plans[i].Blocks[j].ID == block.ID {
			s.plans[i].Blocks[j] = block
			s.adapter.SaveDailyPlans(s.plans)
			return nil
		}
	}
	return fmt.Errorf("time block %s not found on %s", block.ID, date)
}

// RemoveTimeBlock deletes a block from the plan for date
func (s *Store) RemoveTimeBlock(date, blockID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.planIndex(date)
	if i < 0 {
		return fmt.Errorf("no plan for %s", date)
	}

	blocks := s.plans[i].Blocks
	for j := range blocks {
		if blocks[j].ID == blockID {
			s.plans[i].Blocks = append(blocks[:j:j], blocks[j+1:]...)
			s.adapter.SaveDailyPlans(s.plans)
			return nil
		}
	}
	return fmt.Errorf("time block %s not found on %s", blockID, date)
}

// AssignTasksToBlock replaces the task list on a block. The legacy
// single-task field is cleared in favor of the list form.
func (s *Store) AssignTasksToBlock(date, blockID string, taskIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.planIndex(date)
	if i < 0 {
		return fmt.Errorf("no plan for %s", date)
	}
	for j := range s.plans[i].Blocks {
		if s.plans[i].Blocks[j].ID == blockID {
			s.plans[i].Blocks[j].TaskID = nil
			s.plans[i].Blocks[j].TaskIDs = append([]string(nil), taskIDs...)
			s.adapter.SaveDailyPlans(s.plans)
			return nil
		}
	}
	return fmt.Errorf("time block %s not found on %s", blockID, date)
}

// WorkSchedule returns the stored work schedule, nil if unset
func (s *Store) WorkSchedule() *model.WorkSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule
}

// SetWorkSchedule replaces the work schedule
func (s *Store) SetWorkSchedule(schedule *model.WorkSchedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if schedule != nil {
		for _, shift := range schedule.Shifts {
			if err := validateClock(shift.Start); err != nil {
				return err
			}
			if err := validateClock(shift.End); err != nil {
				return err
			}
		}
	}

	s.schedule = schedule
	s.adapter.SaveWorkSchedule(schedule)
	return nil
}

func validatePlanDate(date string) error {
	if _, err := time.Parse(PlanDateFormat, date); err != nil {
		return fmt.Errorf("invalid plan date %q: %w", date, err)
	}
	return nil
}

func validateBlockTimes(block model.TimeBlock) error {
	if err := validateClock(block.Start); err != nil {
		return err
	}
	return validateClock(block.End)
}

func validateClock(hhmm string) error {
	if _, err := time.Parse("15:04", hhmm); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:MM", hhmm)
	}
	return nil
}

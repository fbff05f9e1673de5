package store

import (
	"fmt"

	"github.com/fchant/daybrain/internal/model"
)

// AddTask materializes a draft into the collection and persists it
func (s *Store) AddTask(draft model.TaskDraft) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addTask(draft)
}

func (s *Store) addTask(draft model.TaskDraft) (model.Task, error) {
	if err := draft.Validate(); err != nil {
		return model.Task{}, err
	}

	task := draft.Materialize(s.newID(), s.now())
	s.tasks = append(s.tasks, task)
	s.persistTasks()
	return task, nil
}

// UpdateTask replaces the task with a matching id, refreshing UpdatedAt.
// Referenced ids are not validated; callers own referential sanity here.
func (s *Store) UpdateTask(task model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(task.ID)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s not found", task.ID)
	}

	task.CreatedAt = s.tasks[i].CreatedAt
	task.UpdatedAt = s.now()
	s.tasks[i] = task
	s.persistTasks()
	return task, nil
}

// CompleteTask toggles completion. Unchecking a task you completed by
// mistake is intended behavior, not a bug.
func (s *Store) CompleteTask(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, fmt.Errorf("task %s not found", id)
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	s.tasks[i].UpdatedAt = s.now()
	s.persistTasks()
	return s.tasks[i], nil
}

// ArchiveCompletedTasks archives every completed, unarchived task.
// Calling it twice is the same as calling it once.
func (s *Store) ArchiveCompletedTasks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	archived := 0
	now := s.now()
	for i := range s.tasks {
		if s.tasks[i].Completed && !s.tasks[i].Archived {
			s.tasks[i].Archived = true
			s.tasks[i].UpdatedAt = now
			archived++
		}
	}
	if archived > 0 {
		s.persistTasks()
	}
	return archived
}

// DeleteTask removes a task and all of its descendants, captures the
// removed subtree for undo, and prunes dependency references to every
// removed id.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskIndex(id) < 0 {
		return fmt.Errorf("task %s not found", id)
	}

	s.removeTasks(map[string]bool{id: true})
	s.persistTasks()
	return nil
}

// BulkDeleteTasks removes every listed task and all of their descendants in
// one persisted write
func (s *Store) BulkDeleteTasks(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doomed := make(map[string]bool)
	for _, id := range ids {
		if s.taskIndex(id) >= 0 {
			doomed[id] = true
		}
	}
	if len(doomed) == 0 {
		return
	}

	s.removeTasks(doomed)
	s.persistTasks()
}

// removeTasks deletes the given roots plus all descendants, records the
// removed tasks in the undo buffer, and scrubs DependsOn references to them.
// The scrubbed edges go into the undo entry too, so an undo restores them.
// Caller persists.
func (s *Store) removeTasks(roots map[string]bool) {
	doomed := make(map[string]bool)
	for id := range roots {
		s.collectDescendants(id, doomed)
	}

	var removed, kept []model.Task
	for _, t := range s.tasks {
		if doomed[t.ID] {
			removed = append(removed, t)
		} else {
			kept = append(kept, t)
		}
	}

	pruned := make(map[string][]string)
	for i := range kept {
		filtered := filterIDs(kept[i].DependsOn, doomed)
		if len(filtered) != len(kept[i].DependsOn) {
			for _, dep := range kept[i].DependsOn {
				if doomed[dep] {
					pruned[kept[i].ID] = append(pruned[kept[i].ID], dep)
				}
			}
			kept[i].DependsOn = filtered
		}
	}

	s.tasks = kept
	s.undo = append(s.undo, deletion{tasks: removed, prunedDeps: pruned, deletedAt: s.now()})
}

func (s *Store) collectDescendants(id string, into map[string]bool) {
	if into[id] {
		return
	}
	into[id] = true
	for _, child := range s.children[id] {
		s.collectDescendants(child, into)
	}
}

func filterIDs(ids []string, drop map[string]bool) []string {
	if len(ids) == 0 {
		return ids
	}
	var kept []string
	for _, id := range ids {
		if !drop[id] {
			kept = append(kept, id)
		}
	}
	return kept
}

// BulkCompleteTasks marks every listed task completed in one persisted write
func (s *Store) BulkCompleteTasks(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	changed := false
	for _, id := range ids {
		if i := s.taskIndex(id); i >= 0 && !s.tasks[i].Completed {
			s.tasks[i].Completed = true
			s.tasks[i].UpdatedAt = now
			changed = true
		}
	}
	if changed {
		s.persistTasks()
	}
}

// BulkMoveTasks assigns every listed task to a project (nil clears it)
func (s *Store) BulkMoveTasks(ids []string, projectID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	changed := false
	for _, id := range ids {
		if i := s.taskIndex(id); i >= 0 {
			s.tasks[i].ProjectID = projectID
			s.tasks[i].UpdatedAt = now
			changed = true
		}
	}
	if changed {
		s.persistTasks()
	}
}

// BulkArchiveTasks archives every listed task
func (s *Store) BulkArchiveTasks(ids []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	changed := false
	for _, id := range ids {
		if i := s.taskIndex(id); i >= 0 && !s.tasks[i].Archived {
			s.tasks[i].Archived = true
			s.tasks[i].UpdatedAt = now
			changed = true
		}
	}
	if changed {
		s.persistTasks()
	}
}

// BulkAddTasks materializes several drafts in one persisted write. Either
// every draft validates or nothing is added.
func (s *Store) BulkAddTasks(drafts []model.TaskDraft) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range drafts {
		if err := drafts[i].Validate(); err != nil {
			return nil, fmt.Errorf("draft %d: %w", i, err)
		}
	}

	now := s.now()
	var added []model.Task
	for i := range drafts {
		task := drafts[i].Materialize(s.newID(), now)
		s.tasks = append(s.tasks, task)
		added = append(added, task)
	}
	s.persistTasks()
	return added, nil
}

// BulkConvertToSubtasks reparents every listed task under parentID
func (s *Store) BulkConvertToSubtasks(ids []string, parentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskIndex(parentID) < 0 {
		return fmt.Errorf("parent task %s not found", parentID)
	}

	now := s.now()
	changed := false
	for _, id := range ids {
		if id == parentID {
			continue
		}
		if i := s.taskIndex(id); i >= 0 {
			parent := parentID
			s.tasks[i].ParentTaskID = &parent
			s.tasks[i].UpdatedAt = now
			changed = true
		}
	}
	if changed {
		s.persistTasks()
	}
	return nil
}

// AddDependency records that taskID depends on dependsOnID. The reverse
// direction is derived, so one write keeps both views consistent.
func (s *Store) AddDependency(taskID, dependsOnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return fmt.Errorf("task %s not found", taskID)
	}
	if s.taskIndex(dependsOnID) < 0 {
		return fmt.Errorf("task %s not found", dependsOnID)
	}
	if taskID == dependsOnID {
		return fmt.Errorf("task cannot depend on itself")
	}
	if s.dependencyPathExists(dependsOnID, taskID) {
		return fmt.Errorf("dependency would create a cycle")
	}

	for _, dep := range s.tasks[i].DependsOn {
		if dep == dependsOnID {
			return nil
		}
	}

	s.tasks[i].DependsOn = append(s.tasks[i].DependsOn, dependsOnID)
	s.tasks[i].UpdatedAt = s.now()
	s.persistTasks()
	return nil
}

// RemoveDependency removes the taskID -> dependsOnID edge
func (s *Store) RemoveDependency(taskID, dependsOnID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return fmt.Errorf("task %s not found", taskID)
	}

	deps := s.tasks[i].DependsOn
	for j, dep := range deps {
		if dep == dependsOnID {
			s.tasks[i].DependsOn = append(deps[:j:j], deps[j+1:]...)
			s.tasks[i].UpdatedAt = s.now()
			s.persistTasks()
			return nil
		}
	}
	return nil
}

// dependencyPathExists reports whether from can reach to by following
// DependsOn edges
func (s *Store) dependencyPathExists(from, to string) bool {
	seen := make(map[string]bool)
	var walk func(id string) bool
	walk = func(id string) bool {
		if id == to {
			return true
		}
		if seen[id] {
			return false
		}
		seen[id] = true
		if i := s.taskIndex(id); i >= 0 {
			for _, dep := range s.tasks[i].DependsOn {
				if walk(dep) {
					return true
				}
			}
		}
		return false
	}
	return walk(from)
}

// CanCompleteTask returns false iff at least one dependency is incomplete.
// A task with no dependencies is always completable.
func (s *Store) CanCompleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(id)
	if i < 0 {
		return false
	}
	for _, dep := range s.tasks[i].DependsOn {
		if j := s.taskIndex(dep); j >= 0 && !s.tasks[j].Completed {
			return false
		}
	}
	return true
}

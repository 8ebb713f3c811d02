package service

import (
	"cmp"
	"reflect"
	"slices"

	"github.com/MKhiriev/go-run-watch/models"
)

func compareStepID(s models.Step, id int64) int {
	return cmp.Compare(s.ID, id)
}

// UpsertStep applies update to steps, which must be sorted ascending by ID
// with unique IDs, and reports whether anything changed.
//
// An existing step is shallow-merged with the fields present on update; a new
// ID is inserted in order. A status that would move the step back along its
// lifecycle (e.g. success -> started) is ignored while the other fields of the
// update still apply. An update without an ID is dropped. The input slice is
// never modified.
func UpsertStep(steps []models.Step, update models.Step) ([]models.Step, bool) {
	if update.ID <= 0 {
		return steps, false
	}

	i, found := slices.BinarySearchFunc(steps, update.ID, compareStepID)
	if !found {
		next := make([]models.Step, 0, len(steps)+1)
		next = append(next, steps[:i]...)
		next = append(next, update)
		next = append(next, steps[i:]...)
		return next, true
	}

	current := steps[i]
	regressed := update.Status != "" && update.Status.Rank() < current.Status.Rank()
	if regressed {
		update.Status = ""
	}

	merged := current.MergeFrom(update)
	if regressed && reflect.DeepEqual(merged, current) {
		return steps, false
	}

	next := slices.Clone(steps)
	next[i] = merged
	return next, true
}

// MergeSteps upserts every fetched step into current. Steps missing from
// fetched are kept: a step is never removed once seen.
func MergeSteps(current, fetched []models.Step) []models.Step {
	merged := current
	for _, step := range fetched {
		merged, _ = UpsertStep(merged, step)
	}
	if merged == nil {
		merged = []models.Step{}
	}
	return merged
}

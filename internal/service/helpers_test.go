package service

import "github.com/MKhiriev/go-run-watch/models"

func ptr[T any](v T) *T {
	return &v
}

func ts(value string) *models.Timestamp {
	parsed, err := models.ParseTimestamp(value)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func stepIDs(steps []models.Step) []int64 {
	ids := make([]int64, 0, len(steps))
	for _, s := range steps {
		ids = append(ids, s.ID)
	}
	return ids
}

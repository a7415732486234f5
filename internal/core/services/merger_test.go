package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/normalisers/name"
)

func newMerger() *MergerService {
	return NewMergerService(name.New())
}

// TestMerge_MatchedReplacesExisting tests that a fresh match supersedes
// the stored record
func TestMerge_MatchedReplacesExisting(t *testing.T) {
	merger := newMerger()
	ds := domain.NewDataset()

	merger.Merge(ds, domain.EnrichedRecord{
		Name:   "Ace Pharmacy",
		Phone:  "+353 1 111 1111",
		Status: domain.StatusMatched,
	})
	merger.Merge(ds, domain.EnrichedRecord{
		Name:   "Ace Pharmacy",
		Phone:  "+353 1 222 2222",
		Status: domain.StatusMatched,
	})

	require.Equal(t, 1, ds.Len())
	rec, ok := ds.Lookup("ace pharmacy")
	require.True(t, ok)
	assert.Equal(t, "+353 1 222 2222", rec.Phone)
}

// TestMerge_NotFoundPreservesExisting tests that a failed lookup never
// erases earlier contact details
func TestMerge_NotFoundPreservesExisting(t *testing.T) {
	merger := newMerger()
	ds := domain.NewDataset()

	merger.Merge(ds, domain.EnrichedRecord{
		Name:               "Ace Pharmacy",
		RegistrationNumber: "1001",
		Phone:              "+353 1 111 1111",
		Status:             domain.StatusMatched,
	})
	merger.Merge(ds, domain.EnrichedRecord{
		Name:   "Ace Pharmacy",
		Status: domain.StatusNotFound,
	})

	rec, ok := ds.Lookup("ace pharmacy")
	require.True(t, ok)
	assert.Equal(t, "+353 1 111 1111", rec.Phone)
	assert.Equal(t, "1001", rec.RegistrationNumber)
	assert.Equal(t, domain.StatusMatched, rec.Status, "status must not regress either")
}

// TestMerge_AmbiguousPreservesExisting tests the same retention for
// ambiguous outcomes
func TestMerge_AmbiguousPreservesExisting(t *testing.T) {
	merger := newMerger()
	ds := domain.NewDataset()

	merger.Merge(ds, domain.EnrichedRecord{
		Name:   "Ace Pharmacy",
		Phone:  "+353 1 111 1111",
		Status: domain.StatusMatched,
	})
	merger.Merge(ds, domain.EnrichedRecord{
		Name:   "Ace Pharmacy",
		Status: domain.StatusAmbiguous,
	})

	rec, _ := ds.Lookup("ace pharmacy")
	assert.Equal(t, "+353 1 111 1111", rec.Phone)
}

// TestMerge_AbsentKeyAppendsAnyStatus tests that new names enter the
// dataset whatever their outcome
func TestMerge_AbsentKeyAppendsAnyStatus(t *testing.T) {
	merger := newMerger()
	ds := domain.NewDataset()

	merger.Merge(ds, domain.EnrichedRecord{Name: "Matched Pharmacy", Status: domain.StatusMatched})
	merger.Merge(ds, domain.EnrichedRecord{Name: "Missing Pharmacy", Status: domain.StatusNotFound})
	merger.Merge(ds, domain.EnrichedRecord{Name: "Fuzzy Pharmacy", Status: domain.StatusAmbiguous})

	assert.Equal(t, 3, ds.Len())
}

// TestMerge_KeyCollisionAcrossSpellings tests that spelling variants
// update one record instead of duplicating it
func TestMerge_KeyCollisionAcrossSpellings(t *testing.T) {
	merger := newMerger()
	ds := domain.NewDataset()

	merger.Merge(ds, domain.EnrichedRecord{Name: "O'Brien Pharmacy", Status: domain.StatusMatched})
	merger.Merge(ds, domain.EnrichedRecord{
		Name:   "o brien PHARMACY",
		Phone:  "+353 71 914 2696",
		Status: domain.StatusMatched,
	})

	require.Equal(t, 1, ds.Len())
	rec, ok := ds.Lookup("o brien pharmacy")
	require.True(t, ok)
	assert.Equal(t, "+353 71 914 2696", rec.Phone)
}

// TestMerge_OrderStable tests that merging preserves prior order and
// appends new names at the end
func TestMerge_OrderStable(t *testing.T) {
	merger := newMerger()
	ds := domain.NewDataset()
	ds.Put("first pharmacy", domain.EnrichedRecord{Name: "First Pharmacy", Status: domain.StatusMatched})
	ds.Put("second pharmacy", domain.EnrichedRecord{Name: "Second Pharmacy", Status: domain.StatusMatched})

	// Update the first, append a third.
	merger.Merge(ds, domain.EnrichedRecord{
		Name:   "First Pharmacy",
		Phone:  "+353 52 12345",
		Status: domain.StatusMatched,
	})
	merger.Merge(ds, domain.EnrichedRecord{Name: "Third Pharmacy", Status: domain.StatusNotFound})

	assert.Equal(t, []string{"first pharmacy", "second pharmacy", "third pharmacy"}, ds.Keys())
}

// TestMerge_UnkeyableNameDropped tests that records whose names
// normalise to nothing are not stored
func TestMerge_UnkeyableNameDropped(t *testing.T) {
	merger := newMerger()
	ds := domain.NewDataset()

	merger.Merge(ds, domain.EnrichedRecord{Name: "???", Status: domain.StatusNotFound})

	assert.Equal(t, 0, ds.Len())
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDataset_PutPreservesOrder tests that updates keep position and
// new keys append at the end
func TestDataset_PutPreservesOrder(t *testing.T) {
	ds := NewDataset()
	ds.Put("ace pharmacy", EnrichedRecord{Name: "Ace Pharmacy", Status: StatusNotFound})
	ds.Put("boots pharmacy", EnrichedRecord{Name: "Boots Pharmacy", Status: StatusMatched})
	ds.Put("hickeys pharmacy", EnrichedRecord{Name: "Hickeys Pharmacy", Status: StatusMatched})

	// Update the first record; its position must not move.
	ds.Put("ace pharmacy", EnrichedRecord{
		Name:   "Ace Pharmacy",
		Phone:  "+353 1 234 5678",
		Status: StatusMatched,
	})

	require.Equal(t, 3, ds.Len())
	assert.Equal(t, []string{"ace pharmacy", "boots pharmacy", "hickeys pharmacy"}, ds.Keys())

	recs := ds.Records()
	assert.Equal(t, "Ace Pharmacy", recs[0].Name)
	assert.Equal(t, "+353 1 234 5678", recs[0].Phone)
	assert.Equal(t, StatusMatched, recs[0].Status)
}

// TestDataset_NoDuplicateKeys tests that putting the same key twice
// never produces two records
func TestDataset_NoDuplicateKeys(t *testing.T) {
	ds := NewDataset()
	for i := 0; i < 5; i++ {
		ds.Put("ace pharmacy", EnrichedRecord{Name: "Ace Pharmacy"})
	}

	assert.Equal(t, 1, ds.Len())
	assert.Len(t, ds.Records(), 1)
}

// TestDataset_Lookup tests key lookup on present and absent keys
func TestDataset_Lookup(t *testing.T) {
	ds := NewDataset()
	ds.Put("boots pharmacy", EnrichedRecord{Name: "Boots Pharmacy", RegistrationNumber: "1234"})

	rec, ok := ds.Lookup("boots pharmacy")
	require.True(t, ok)
	assert.Equal(t, "1234", rec.RegistrationNumber)

	_, ok = ds.Lookup("missing")
	assert.False(t, ok)
}

// TestDataset_Clone tests that clones are independent of the original
func TestDataset_Clone(t *testing.T) {
	ds := NewDataset()
	ds.Put("ace pharmacy", EnrichedRecord{Name: "Ace Pharmacy", Status: StatusMatched})

	clone := ds.Clone()
	clone.Put("ace pharmacy", EnrichedRecord{Name: "Ace Pharmacy", Status: StatusNotFound})
	clone.Put("new pharmacy", EnrichedRecord{Name: "New Pharmacy"})

	// Original untouched.
	require.Equal(t, 1, ds.Len())
	orig, ok := ds.Lookup("ace pharmacy")
	require.True(t, ok)
	assert.Equal(t, StatusMatched, orig.Status)

	assert.Equal(t, 2, clone.Len())
}

// TestDataset_EmptyRecords tests behaviour of a fresh dataset
func TestDataset_EmptyRecords(t *testing.T) {
	ds := NewDataset()
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Records())
	assert.Empty(t, ds.Keys())
}

package services

import (
	"github.com/RachelGal/pharmacy-scraper/internal/core/domain"
	"github.com/RachelGal/pharmacy-scraper/internal/logger"
)

// ChangeLogService compares two dataset generations and reports what
// changed, for the change_log.csv written alongside the output.
type ChangeLogService struct{}

// NewChangeLogService creates a new change log service.
func NewChangeLogService() *ChangeLogService {
	return &ChangeLogService{}
}

// Diff returns the differences between old and new: records added,
// records removed, and one update row per changed field. The trading
// name column itself is not compared; records are paired by its
// normalised form, so spelling drift in the key column is not a
// reportable change. Emission order is stable: additions in new
// dataset order, removals in old dataset order, then field updates in
// new dataset order.
func (s *ChangeLogService) Diff(old, new *domain.Dataset) []domain.Change {
	var changes []domain.Change

	for _, key := range new.Keys() {
		if _, ok := old.Lookup(key); ok {
			continue
		}
		rec, _ := new.Lookup(key)
		changes = append(changes, domain.Change{
			Type:               domain.ChangeAdded,
			Name:               rec.Name,
			RegistrationNumber: rec.RegistrationNumber,
		})
	}

	for _, key := range old.Keys() {
		if _, ok := new.Lookup(key); ok {
			continue
		}
		rec, _ := old.Lookup(key)
		changes = append(changes, domain.Change{
			Type:               domain.ChangeRemoved,
			Name:               rec.Name,
			RegistrationNumber: rec.RegistrationNumber,
		})
	}

	for _, key := range new.Keys() {
		oldRec, ok := old.Lookup(key)
		if !ok {
			continue
		}
		newRec, _ := new.Lookup(key)
		for _, column := range domain.DatasetColumns() {
			if column == domain.FieldTradingName {
				continue
			}
			oldVal, newVal := oldRec.Value(column), newRec.Value(column)
			if oldVal == newVal {
				continue
			}
			changes = append(changes, domain.Change{
				Type:               domain.ChangeUpdated,
				Name:               newRec.Name,
				RegistrationNumber: newRec.RegistrationNumber,
				Field:              column,
				OldValue:           oldVal,
				NewValue:           newVal,
			})
		}
	}

	logger.Debug("Change log: %d changes between generations", len(changes))
	return changes
}

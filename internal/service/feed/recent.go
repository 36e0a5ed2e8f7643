package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/assetledger/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// Assignment is one feed line. EmployeeName is the holder's current name;
// NameAtAssignment is the name recorded in the ledger entry.
type Assignment struct {
	AssetID          uuid.UUID `json:"asset_id"`
	AssetName        string    `json:"asset_name"`
	EmployeeID       uuid.UUID `json:"employee_id"`
	EmployeeName     string    `json:"employee_name"`
	NameAtAssignment string    `json:"name_at_assignment"`
	Active           bool      `json:"active"`
	AssignedAt       time.Time `json:"assigned_at"`
}

// RecentlyAssigned lists the newest assignments across all assets. Current
// employee names are loaded in batches; an employee deleted since keeps the
// name the ledger recorded.
func (s *Service) RecentlyAssigned(ctx context.Context, limit int) ([]Assignment, error) {
	if limit <= 0 || limit > s.cfg.Limit {
		limit = s.cfg.Limit
	}

	events, err := s.assets.RecentAssignments(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent assignments: %w", err)
	}

	// Every Load is issued before any thunk is called, so they share a batch.
	loader := s.employeeLoader()
	thunks := make([]dataloader.Thunk[domain.Employee], len(events))
	for i, ev := range events {
		thunks[i] = loader.Load(ctx, ev.Entry.Assignment.To.ID)
	}

	out := make([]Assignment, len(events))
	for i, ev := range events {
		to := ev.Entry.Assignment.To
		item := Assignment{
			AssetID:          ev.AssetID,
			AssetName:        ev.AssetName,
			EmployeeID:       to.ID,
			EmployeeName:     to.Name,
			NameAtAssignment: to.Name,
			AssignedAt:       ev.Entry.Date,
		}

		e, loadErr := thunks[i]()
		switch {
		case loadErr == nil:
			item.EmployeeName = e.Name
			item.Active = e.IsActive()
		case !errors.Is(loadErr, domain.ErrNotFound):
			return nil, fmt.Errorf("load employee %s: %w", to.ID, loadErr)
		}
		out[i] = item
	}
	return out, nil
}

// employeeLoader returns a loader scoped to one call, so its cache never
// outlives the request.
func (s *Service) employeeLoader() *dataloader.Loader[uuid.UUID, domain.Employee] {
	return dataloader.NewBatchedLoader(
		newEmployeesBatchFn(s.employees),
		dataloader.WithBatchCapacity[uuid.UUID, domain.Employee](maxBatch),
		dataloader.WithWait[uuid.UUID, domain.Employee](wait),
	)
}

func newEmployeesBatchFn(repo employeeRepo) dataloader.BatchFunc[uuid.UUID, domain.Employee] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Employee] {
		results := make([]*dataloader.Result[domain.Employee], len(keys))

		employees, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[domain.Employee]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]domain.Employee, len(employees))
		for _, e := range employees {
			byID[e.ID] = e
		}
		for i, key := range keys {
			if e, ok := byID[key]; ok {
				results[i] = &dataloader.Result[domain.Employee]{Data: e}
			} else {
				results[i] = &dataloader.Result[domain.Employee]{Error: fmt.Errorf("employee %s: %w", key, domain.ErrNotFound)}
			}
		}
		return results
	}
}

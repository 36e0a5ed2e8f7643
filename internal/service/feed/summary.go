package feed

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// Summary holds the dashboard counters.
type Summary struct {
	Assets            map[domain.AssetStatus]int    `json:"assets"`
	Employees         map[domain.EmployeeStatus]int `json:"employees"`
	LowStock          int                           `json:"low_stock_consumables"`
	LowStockThreshold int                           `json:"low_stock_threshold"`
}

// Summary reads the counters concurrently.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	out := Summary{LowStockThreshold: s.cfg.LowStockThreshold}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		out.Assets, err = s.assets.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count assets: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.Employees, err = s.employees.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.LowStock, err = s.consumables.CountLowStock(gctx, s.cfg.LowStockThreshold)
		if err != nil {
			return fmt.Errorf("count low stock: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return out, nil
}

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedEmployee inserts an active employee with empty logs.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool) domain.Employee {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	emp := domain.Employee{
		ID:        uuid.New(),
		Name:      "Employee " + suffix,
		Email:     "emp-" + suffix + "@example.com",
		Status:    domain.EmployeeStatusActive,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO employees (id, name, email, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		emp.ID, emp.Name, emp.Email, string(emp.Status), emp.CreatedAt, emp.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee: %v", err)
	}
	return emp
}

// SeedAsset inserts an asset, assigned to assignee when it is non-nil.
func SeedAsset(t *testing.T, pool *pgxpool.Pool, assignee *uuid.UUID) domain.Asset {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	state := domain.StateAvailable()
	if assignee != nil {
		state = domain.StateAssigned(*assignee)
	}
	asset := domain.Asset{
		ID:           uuid.New(),
		Name:         "Laptop " + suffix,
		SerialNumber: "SN-" + suffix,
		State:        state,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO assets (id, name, serial_number, status, assigned_to, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		asset.ID, asset.Name, asset.SerialNumber, string(state.Status()), state.AssigneePtr(), now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAsset: %v", err)
	}
	return asset
}

// SeedConsumable inserts a consumable with the given stock and no issues.
func SeedConsumable(t *testing.T, pool *pgxpool.Pool, quantity int) domain.Consumable {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Consumable{
		ID:              uuid.New(),
		Name:            "Toner " + uniqueSuffix(),
		InitialQuantity: quantity,
		Quantity:        quantity,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO consumables (id, name, initial_quantity, quantity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.InitialQuantity, c.Quantity, now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConsumable: %v", err)
	}
	return c
}

package roster

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/google/uuid"

	"github.com/heartmarshall/assetledger/internal/domain"
)

// CreateEmployeeInput holds the parameters for adding an employee.
type CreateEmployeeInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Validate checks all fields and collects all errors.
func (i CreateEmployeeInput) Validate() error {
	if errs := i.fieldErrors(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateEmployeeInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError
	name := domain.CleanText(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if email := domain.NormalizeEmail(i.Email); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}
	return errs
}

func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (domain.Employee, error) {
	e, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return domain.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (s *Service) ListEmployees(ctx context.Context, f domain.EmployeeFilter) ([]domain.Employee, error) {
	if f.Status != nil && !f.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown employee status")
	}
	items, err := s.employees.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return items, nil
}

// CreateEmployee adds an Active employee. Emails are unique ignoring case.
func (s *Service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return domain.Employee{}, err
	}

	created, err := s.employees.Create(ctx, s.newEmployee(input, domain.ActionCreated))
	if err != nil {
		return domain.Employee{}, fmt.Errorf("create employee: %w", err)
	}

	s.log.InfoContext(ctx, "employee created", slog.String("employee_id", created.ID.String()))
	return created, nil
}

// ImportEmployees inserts all rows in one statement, or none.
func (s *Service) ImportEmployees(ctx context.Context, rows []CreateEmployeeInput) (int, error) {
	if len(rows) == 0 {
		return 0, domain.NewValidationError("rows", "at least one row is required")
	}
	if s.cfg.MaxImportRows > 0 && len(rows) > s.cfg.MaxImportRows {
		return 0, domain.NewValidationError("rows", fmt.Sprintf("max %d rows per import", s.cfg.MaxImportRows))
	}

	var errs []domain.FieldError
	emails := make(map[string]int, len(rows))
	employees := make([]domain.Employee, len(rows))
	for n, row := range rows {
		for _, fe := range row.fieldErrors() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("rows[%d].%s", n, fe.Field), Message: fe.Message})
		}
		if email := domain.NormalizeEmail(row.Email); email != "" {
			if first, dup := emails[email]; dup {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("rows[%d].email", n),
					Message: fmt.Sprintf("duplicates rows[%d]", first),
				})
			} else {
				emails[email] = n
			}
		}
		employees[n] = s.newEmployee(row, domain.ActionImported)
	}
	if len(errs) > 0 {
		return 0, domain.NewValidationErrors(errs)
	}

	n, err := s.employees.BulkCreate(ctx, employees)
	if err != nil {
		return 0, fmt.Errorf("bulk create employees: %w", err)
	}

	s.log.InfoContext(ctx, "employees imported", slog.Int("count", n))
	return n, nil
}

func (s *Service) newEmployee(input CreateEmployeeInput, action string) domain.Employee {
	now := s.now()
	e := domain.Employee{
		ID:         uuid.New(),
		Name:       domain.CleanText(input.Name),
		Email:      domain.NormalizeEmail(input.Email),
		Department: domain.CleanText(input.Department),
		Status:     domain.EmployeeStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	e.AuditLog, _ = domain.AppendEntry(nil, action, "", now)
	return e
}

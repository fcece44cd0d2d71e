package workforce

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
  id, first_name, middle_name, last_name, second_last_name, nickname,
  role, email, phone, hired_at, contract_end, active,
  national_id, social_security, bank_account,
  position, work_schedule, contract_type, working_day,
  password_hash, mandatory_documents, labor_documents, additional_documents, payslips,
  created_at, updated_at
`

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    ORDER BY last_name, first_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		employee, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}
	return employees, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	employee, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return employee, err
}

func (s *Store) Insert(ctx context.Context, employee Employee) error {
	mandatory, labor, additional, payslips, err := marshalDocumentGroups(employee)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO employees (
      id, first_name, middle_name, last_name, second_last_name, nickname,
      role, email, phone, hired_at, contract_end, active,
      national_id, social_security, bank_account,
      position, work_schedule, contract_type, working_day,
      password_hash, mandatory_documents, labor_documents, additional_documents, payslips
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
  `,
		employee.ID, employee.FirstName, employee.MiddleName, employee.LastName, employee.SecondLastName, employee.Nickname,
		employee.Role, employee.Email, employee.Phone, employee.HiredAt, employee.ContractEnd, employee.Active,
		employee.NationalID, employee.SocialSecurity, employee.BankAccount,
		employee.Position, employee.WorkSchedule, employee.ContractType, employee.WorkingDay,
		employee.PasswordHash, mandatory, labor, additional, payslips,
	)
	return err
}

func (s *Store) Update(ctx context.Context, employee Employee) (bool, error) {
	mandatory, labor, additional, payslips, err := marshalDocumentGroups(employee)
	if err != nil {
		return false, err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET
      first_name = $2, middle_name = $3, last_name = $4, second_last_name = $5, nickname = $6,
      role = $7, email = $8, phone = $9, hired_at = $10, contract_end = $11, active = $12,
      national_id = $13, social_security = $14, bank_account = $15,
      position = $16, work_schedule = $17, contract_type = $18, working_day = $19,
      password_hash = $20, mandatory_documents = $21, labor_documents = $22,
      additional_documents = $23, payslips = $24,
      updated_at = now()
    WHERE id = $1
  `,
		employee.ID, employee.FirstName, employee.MiddleName, employee.LastName, employee.SecondLastName, employee.Nickname,
		employee.Role, employee.Email, employee.Phone, employee.HiredAt, employee.ContractEnd, employee.Active,
		employee.NationalID, employee.SocialSecurity, employee.BankAccount,
		employee.Position, employee.WorkSchedule, employee.ContractType, employee.WorkingDay,
		employee.PasswordHash, mandatory, labor, additional, payslips,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	return err
}

// EmployeeSnapshot feeds the alert generator.
func (s *Store) EmployeeSnapshot(ctx context.Context) ([]Employee, error) {
	return s.List(ctx)
}

func marshalDocumentGroups(employee Employee) ([]byte, []byte, []byte, []byte, error) {
	mandatory, err := json.Marshal(orEmpty(employee.MandatoryDocuments))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	labor, err := json.Marshal(orEmpty(employee.LaborDocuments))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	additional, err := json.Marshal(orEmpty(employee.AdditionalDocuments))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	payslips, err := json.Marshal(orEmpty(employee.Payslips))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return mandatory, labor, additional, payslips, nil
}

func orEmpty(docs []Document) []Document {
	if docs == nil {
		return []Document{}
	}
	return docs
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	var hiredAt, contractEnd *time.Time
	var mandatory, labor, additional, payslips []byte
	err := row.Scan(
		&e.ID, &e.FirstName, &e.MiddleName, &e.LastName, &e.SecondLastName, &e.Nickname,
		&e.Role, &e.Email, &e.Phone, &hiredAt, &contractEnd, &e.Active,
		&e.NationalID, &e.SocialSecurity, &e.BankAccount,
		&e.Position, &e.WorkSchedule, &e.ContractType, &e.WorkingDay,
		&e.PasswordHash, &mandatory, &labor, &additional, &payslips,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return Employee{}, err
	}
	e.HiredAt = hiredAt
	e.ContractEnd = contractEnd
	if err := unmarshalDocs(mandatory, &e.MandatoryDocuments); err != nil {
		return Employee{}, err
	}
	if err := unmarshalDocs(labor, &e.LaborDocuments); err != nil {
		return Employee{}, err
	}
	if err := unmarshalDocs(additional, &e.AdditionalDocuments); err != nil {
		return Employee{}, err
	}
	if err := unmarshalDocs(payslips, &e.Payslips); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func unmarshalDocs(raw []byte, target *[]Document) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}

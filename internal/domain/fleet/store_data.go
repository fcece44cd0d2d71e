package fleet

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound        = errors.New("vehicle not found")
	ErrFuelLogNotFound = errors.New("fuel log not found")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const vehicleColumns = `
  id, plate, make, model, year, status, visibility,
  next_inspection, next_service_km, current_km, insurance_expiry, assigned_to,
  basic_documents, specific_documents, additional_documents,
  created_at, updated_at
`

func (s *Store) List(ctx context.Context) ([]Vehicle, error) {
	return s.queryVehicles(ctx, `
    SELECT `+vehicleColumns+`
    FROM vehicles
    ORDER BY created_at
  `)
}

func (s *Store) ListAssignedTo(ctx context.Context, employeeID string) ([]Vehicle, error) {
	return s.queryVehicles(ctx, `
    SELECT `+vehicleColumns+`
    FROM vehicles
    WHERE assigned_to = $1
    ORDER BY created_at
  `, employeeID)
}

// RecentVehicles returns the most recently registered vehicles for the
// dashboard, newest first.
func (s *Store) RecentVehicles(ctx context.Context, limit int) ([]Vehicle, error) {
	return s.queryVehicles(ctx, `
    SELECT `+vehicleColumns+`
    FROM vehicles
    ORDER BY created_at DESC
    LIMIT $1
  `, limit)
}

// VehicleSnapshot feeds the alert generator.
func (s *Store) VehicleSnapshot(ctx context.Context) ([]Vehicle, error) {
	return s.List(ctx)
}

func (s *Store) queryVehicles(ctx context.Context, query string, args ...any) ([]Vehicle, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Vehicle, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+vehicleColumns+`
    FROM vehicles
    WHERE id = $1
  `, id)
	vehicle, err := scanVehicle(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Vehicle{}, ErrNotFound
	}
	if err != nil {
		return Vehicle{}, err
	}
	history, err := s.History(ctx, id)
	if err != nil {
		return Vehicle{}, err
	}
	vehicle.History = history
	return vehicle, nil
}

func (s *Store) Insert(ctx context.Context, vehicle Vehicle) error {
	basic, specific, additional, err := marshalDocumentGroups(vehicle)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO vehicles (
      id, plate, make, model, year, status, visibility,
      next_inspection, next_service_km, current_km, insurance_expiry, assigned_to,
      basic_documents, specific_documents, additional_documents
    ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
  `,
		vehicle.ID, vehicle.Plate, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Status, vehicle.Visibility,
		vehicle.NextInspection, vehicle.NextServiceKm, vehicle.CurrentKm, vehicle.InsuranceExpiry, nullIfEmpty(vehicle.AssignedTo),
		basic, specific, additional,
	)
	return err
}

func (s *Store) Update(ctx context.Context, vehicle Vehicle) (bool, error) {
	basic, specific, additional, err := marshalDocumentGroups(vehicle)
	if err != nil {
		return false, err
	}
	tag, err := s.DB.Exec(ctx, `
    UPDATE vehicles SET
      plate = $2, make = $3, model = $4, year = $5, status = $6, visibility = $7,
      next_inspection = $8, next_service_km = $9, current_km = $10,
      insurance_expiry = $11, assigned_to = $12,
      basic_documents = $13, specific_documents = $14, additional_documents = $15,
      updated_at = now()
    WHERE id = $1
  `,
		vehicle.ID, vehicle.Plate, vehicle.Make, vehicle.Model, vehicle.Year, vehicle.Status, vehicle.Visibility,
		vehicle.NextInspection, vehicle.NextServiceKm, vehicle.CurrentKm, vehicle.InsuranceExpiry, nullIfEmpty(vehicle.AssignedTo),
		basic, specific, additional,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM vehicles WHERE id = $1", id)
	return err
}

func (s *Store) AppendHistory(ctx context.Context, entry HistoryEntry) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO vehicle_history (id, vehicle_id, occurred_at, action, actor, details)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, entry.ID, entry.VehicleID, entry.OccurredAt, entry.Action, entry.Actor, entry.Details)
	return err
}

func (s *Store) History(ctx context.Context, vehicleID string) ([]HistoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, vehicle_id, occurred_at, action, actor, details
    FROM vehicle_history
    WHERE vehicle_id = $1
    ORDER BY occurred_at
  `, vehicleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.VehicleID, &entry.OccurredAt, &entry.Action, &entry.Actor, &entry.Details); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *Store) ListFuelLogs(ctx context.Context, vehicleID string) ([]FuelLog, error) {
	query := `
    SELECT id, vehicle_id, date, liters, cost, mileage, performed_by
    FROM fuel_logs
  `
	args := []any{}
	if vehicleID != "" {
		query += " WHERE vehicle_id = $1"
		args = append(args, vehicleID)
	}
	query += " ORDER BY date DESC"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []FuelLog
	for rows.Next() {
		var log FuelLog
		if err := rows.Scan(&log.ID, &log.VehicleID, &log.Date, &log.Liters, &log.Cost, &log.Mileage, &log.PerformedBy); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (s *Store) InsertFuelLog(ctx context.Context, log FuelLog) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO fuel_logs (id, vehicle_id, date, liters, cost, mileage, performed_by)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, log.ID, log.VehicleID, log.Date, log.Liters, log.Cost, log.Mileage, log.PerformedBy)
	return err
}

func (s *Store) UpdateFuelLog(ctx context.Context, log FuelLog) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE fuel_logs SET
      vehicle_id = $2, date = $3, liters = $4, cost = $5, mileage = $6, performed_by = $7
    WHERE id = $1
  `, log.ID, log.VehicleID, log.Date, log.Liters, log.Cost, log.Mileage, log.PerformedBy)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteFuelLog(ctx context.Context, id string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM fuel_logs WHERE id = $1", id)
	return err
}

func marshalDocumentGroups(vehicle Vehicle) ([]byte, []byte, []byte, error) {
	basic, err := json.Marshal(orEmpty(vehicle.BasicDocuments))
	if err != nil {
		return nil, nil, nil, err
	}
	specific, err := json.Marshal(orEmpty(vehicle.SpecificDocuments))
	if err != nil {
		return nil, nil, nil, err
	}
	additional, err := json.Marshal(orEmpty(vehicle.AdditionalDocuments))
	if err != nil {
		return nil, nil, nil, err
	}
	return basic, specific, additional, nil
}

func orEmpty(docs []Document) []Document {
	if docs == nil {
		return []Document{}
	}
	return docs
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func scanVehicle(row pgx.Row) (Vehicle, error) {
	var v Vehicle
	var assignedTo *string
	var basic, specific, additional []byte
	err := row.Scan(
		&v.ID, &v.Plate, &v.Make, &v.Model, &v.Year, &v.Status, &v.Visibility,
		&v.NextInspection, &v.NextServiceKm, &v.CurrentKm, &v.InsuranceExpiry, &assignedTo,
		&basic, &specific, &additional,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return Vehicle{}, err
	}
	if assignedTo != nil {
		v.AssignedTo = *assignedTo
	}
	if err := unmarshalDocs(basic, &v.BasicDocuments); err != nil {
		return Vehicle{}, err
	}
	if err := unmarshalDocs(specific, &v.SpecificDocuments); err != nil {
		return Vehicle{}, err
	}
	if err := unmarshalDocs(additional, &v.AdditionalDocuments); err != nil {
		return Vehicle{}, err
	}
	return v, nil
}

func unmarshalDocs(raw []byte, target *[]Document) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, target)
}

package fleet

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Vehicle, error)
	ListAssignedTo(ctx context.Context, employeeID string) ([]Vehicle, error)
	Get(ctx context.Context, id string) (Vehicle, error)
	Insert(ctx context.Context, vehicle Vehicle) error
	Update(ctx context.Context, vehicle Vehicle) (bool, error)
	Delete(ctx context.Context, id string) error
	AppendHistory(ctx context.Context, entry HistoryEntry) error
	History(ctx context.Context, vehicleID string) ([]HistoryEntry, error)

	ListFuelLogs(ctx context.Context, vehicleID string) ([]FuelLog, error)
	InsertFuelLog(ctx context.Context, log FuelLog) error
	UpdateFuelLog(ctx context.Context, log FuelLog) (bool, error)
	DeleteFuelLog(ctx context.Context, id string) error
}

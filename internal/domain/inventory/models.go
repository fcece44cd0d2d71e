package inventory

import "time"

type MedicalSupply struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Stock        int        `json:"stock"`
	ReorderLevel int        `json:"reorderLevel"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
}

// NeedsReorder reports whether the stock has fallen to or below the reorder
// level.
func (m MedicalSupply) NeedsReorder() bool {
	return m.Stock <= m.ReorderLevel
}

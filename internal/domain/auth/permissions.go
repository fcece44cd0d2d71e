package auth

const (
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleOffice     = "office"
	RoleTechnician = "technician"
	RoleMedic      = "medic"
)

const (
	PermVehiclesRead    = "vehicles.read"
	PermVehiclesWrite   = "vehicles.write"
	PermEmployeesRead   = "employees.read"
	PermEmployeesWrite  = "employees.write"
	PermERPRead         = "erp.read"
	PermERPWrite        = "erp.write"
	PermOperationsRead  = "operations.read"
	PermOperationsWrite = "operations.write"
	PermSignaturesRead  = "signatures.read"
	PermSignaturesWrite = "signatures.write"
	PermAlertsRead      = "alerts.read"
	PermAlertsWrite     = "alerts.write"
	PermReportsRead     = "reports.read"
	PermAuditRead       = "audit.read"
)

var AllPermissions = []string{
	PermVehiclesRead, PermVehiclesWrite,
	PermEmployeesRead, PermEmployeesWrite,
	PermERPRead, PermERPWrite,
	PermOperationsRead, PermOperationsWrite,
	PermSignaturesRead, PermSignaturesWrite,
	PermAlertsRead, PermAlertsWrite,
	PermReportsRead, PermAuditRead,
}

// RolePermissions is the static role grant table. The office role is the one
// exception: its page access is additionally narrowed per employee via
// stored overrides.
var RolePermissions = map[string][]string{
	RoleAdmin: AllPermissions,
	RoleManager: {
		PermVehiclesRead, PermVehiclesWrite,
		PermEmployeesRead, PermEmployeesWrite,
		PermERPRead, PermERPWrite,
		PermOperationsRead, PermOperationsWrite,
		PermSignaturesRead, PermSignaturesWrite,
		PermAlertsRead, PermAlertsWrite,
		PermReportsRead,
	},
	RoleOffice: {
		PermVehiclesRead, PermVehiclesWrite,
		PermEmployeesRead, PermEmployeesWrite,
		PermERPRead, PermERPWrite,
		PermOperationsRead, PermOperationsWrite,
		PermSignaturesRead, PermSignaturesWrite,
		PermAlertsRead,
	},
	RoleTechnician: {
		PermVehiclesRead,
		PermOperationsRead, PermOperationsWrite,
		PermAlertsRead,
	},
	RoleMedic: {
		PermOperationsRead, PermOperationsWrite,
		PermAlertsRead,
	},
}

// PageAccess mirrors the per-employee visibility toggles applied to the
// office role.
type PageAccess struct {
	Vehicles   bool `json:"vehicles"`
	Employees  bool `json:"employees"`
	ERP        bool `json:"erp"`
	Operations bool `json:"operations"`
	Signatures bool `json:"signatures"`
}

func RoleHasPermission(role, permission string) bool {
	for _, granted := range RolePermissions[role] {
		if granted == permission {
			return true
		}
	}
	return false
}

// pagePermissionArea maps a permission key to the PageAccess toggle that can
// switch it off for office accounts. Permissions outside the five pages are
// unaffected by overrides.
func pageAllows(access PageAccess, permission string) bool {
	switch permission {
	case PermVehiclesRead, PermVehiclesWrite:
		return access.Vehicles
	case PermEmployeesRead, PermEmployeesWrite:
		return access.Employees
	case PermERPRead, PermERPWrite:
		return access.ERP
	case PermOperationsRead, PermOperationsWrite:
		return access.Operations
	case PermSignaturesRead, PermSignaturesWrite:
		return access.Signatures
	default:
		return true
	}
}

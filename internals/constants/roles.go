package constants

import "fmt"

// Role string yang dikembalikan ke frontend (dan disimpan di token claim).
const (
	RoleSuperadmin = "superadmin"
	RoleSupervisor = "supervisor"
	RoleUser       = "user"
)

// Template pesan error role
const (
	ErrOnlySupervisorsCanAccess = "❌ Hanya supervisor atau superadmin yang boleh mengakses fitur %s."
	ErrOnlySuperadminCanAccess  = "❌ Hanya superadmin yang boleh mengakses fitur %s."
)

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleSupervisor,
		RoleSuperadmin,
	}

	SupervisorAndAbove = []string{
		RoleSupervisor,
		RoleSuperadmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)

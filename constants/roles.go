package constants

// Staff roles
const (
	RoleAdmin    = "admin"
	RoleAccounts = "accounts"
	RoleSales    = "sales"
	RoleCustom   = "custom"
	RoleViewer   = "viewer"
	RoleNewUser  = "new_user"

	// RoleAny matches any authenticated user regardless of role.
	RoleAny = "any"
)

// Role groups for route guards
var (
	// StaffRoles may read KYC, quotation and booking registers.
	StaffRoles = []string{RoleAdmin, RoleAccounts, RoleSales, RoleCustom, RoleViewer}

	// BookingWriteRoles may create, edit and move bookings through the lifecycle.
	BookingWriteRoles = []string{RoleAdmin, RoleSales}

	// RecordWriteRoles may submit KYC records and quotations.
	RecordWriteRoles = []string{RoleAdmin, RoleSales}
)

// IsValidRole reports whether the role is one a user account may hold.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAccounts, RoleSales, RoleCustom, RoleViewer, RoleNewUser:
		return true
	default:
		return false
	}
}

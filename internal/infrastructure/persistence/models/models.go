package models

// All lists every model managed by GORM auto-migration, parents first.
func All() []any {
	return []any{
		&UserModel{},
		&PurchaseRequestModel{},
		&PrivilegeModel{},
	}
}

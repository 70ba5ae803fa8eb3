package users

// AdminSeed учётная запись администратора, создаваемая при первом запуске
type AdminSeed struct {
	Name     string
	Email    string
	Password string
}

// DefaultAdminID идентификатор администратора по умолчанию
const DefaultAdminID = "admin-1"

package entity

// User identidad emitida por el backend. Inmutable desde el cliente: solo se
// guarda una copia junto con las credenciales de la sesión.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CompanyID int64  `json:"company_id"`
}

// FullName nombre para mostrar; cae al username si no hay nombres cargados.
func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}

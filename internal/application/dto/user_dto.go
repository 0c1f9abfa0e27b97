package dto

// LoginRequest credenciales de ingreso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Success bool    `json:"success"`
	Token   string  `json:"token"`
	Usuario UserDTO `json:"usuario"`
}

// RegisterRequest entrada para crear un usuario.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}

// UserDTO salida de un usuario (nunca incluye el hash de contraseña).
type UserDTO struct {
	ID     int64  `json:"id_usuario"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	Estado string `json:"estado"`
}

// UserResponse respuesta de un usuario individual.
type UserResponse struct {
	Success bool    `json:"success"`
	Usuario UserDTO `json:"usuario"`
}

// UserListResponse lista de usuarios.
type UserListResponse struct {
	Success    bool       `json:"success"`
	Usuarios   []UserDTO  `json:"usuarios"`
	Pagination Pagination `json:"paginacion,omitempty"`
}

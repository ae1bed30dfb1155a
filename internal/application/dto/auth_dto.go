package dto

// LoginForm campos del formulario de inicio de sesión.
type LoginForm struct {
	Nombre   string `form:"nombre" json:"nombre"`
	Password string `form:"password" json:"password"`
}

// Session identidad de la sesión activa.
type Session struct {
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

// LoginResult token de sesión firmado y la identidad que contiene.
type LoginResult struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}

// HealthResponse cuerpo de GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

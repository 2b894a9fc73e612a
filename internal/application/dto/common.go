package dto

// ErrorResponse cuerpo de error HTTP. El mensaje es texto localizado para el usuario;
// el detalle técnico nunca viaja en la respuesta, solo al log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse confirmación sin payload (borrados).
type SuccessResponse struct {
	Success bool `json:"success"`
}

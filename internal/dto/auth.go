package dto

type LoginRequestDTO struct {
	AdminID  int64  `json:"admin_id" example:"123456789"`
	Password string `json:"password" example:"s3cret"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

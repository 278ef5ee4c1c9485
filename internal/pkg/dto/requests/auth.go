package requests

type Login struct {
	Username string `json:"username" schema:"username" validate:"required"`
	Password string `json:"password" schema:"password" validate:"required"`
}

type Register struct {
	FirstName string `json:"first_name" schema:"first_name" validate:"required"`
	LastName  string `json:"last_name" schema:"last_name" validate:"required"`
	Email     string `json:"email" schema:"email" validate:"required,email"`
	Password  string `json:"password" schema:"password" validate:"required"`
}

package application

// CreateUserCommand carries a registration request into UserCreator.
type CreateUserCommand struct {
	Email     string
	Password  string
	Name      string
	AvatarURL *string
}

// ConfirmUserCommand carries the bearer token from the confirmation link.
type ConfirmUserCommand struct {
	Token string
}

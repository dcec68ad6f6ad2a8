package user

// AuthorizedUser — строка таблицы authorized_users.
// user_id — это telegram id пользователя, он же первичный ключ.
type AuthorizedUser struct {
	UserID      int64
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber *string
}

// ListItem — проекция для выгрузки списка пользователей.
// PhoneNumber подставляется литералом "None", если телефон не заполнен.
type ListItem struct {
	Username    string `json:"username"`
	PhoneNumber string `json:"phone_number"`
}

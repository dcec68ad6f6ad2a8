package messages

import "time"

// Entry — строка таблицы users_messages: запрос пользователя
// и ответ, который ушёл ему в чат (включая строки-ошибки провайдера).
type Entry struct {
	ID       int64     `json:"id"`
	Time     time.Time `json:"time"`
	UserID   int64     `json:"user_id"`
	Request  string    `json:"request"`
	Response string    `json:"response"`
}

package dto

type UserItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

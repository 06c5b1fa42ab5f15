package service

type SendMessageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

package v1

type SendMessageResponse struct {
	Success bool   `json:"success"`
	SID     string `json:"sid"`
}

package api

type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Webhook string `json:"webhook"`
	Test    string `json:"test"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp string    `json:"timestamp"`
	Endpoints Endpoints `json:"endpoints"`
}

type Endpoints struct {
	Webhook     string `json:"webhook"`
	SendMessage string `json:"send_message"`
	Health      string `json:"health"`
}

package errors

type Response struct {
	Error string `json:"error"`
}

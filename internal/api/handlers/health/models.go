package health

// Response тело ответа /health
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

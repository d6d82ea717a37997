package responses

type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type Health struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

package responses

// ResponseDTO is the envelope used by the newer reporting routes.
type ResponseDTO struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

// ErrorDTO is written for every failed request. Status is only set on
// routes that use the envelope.
type ErrorDTO struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error"`
}

type Pagination struct {
	TotalRecords int64 `json:"total_records"`
	TotalPages   int64 `json:"total_pages"`
	CurrentPage  int64 `json:"current_page"`
	Limit        int64 `json:"limit"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
}

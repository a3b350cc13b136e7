package response

type JSONResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Error(status, message string, data interface{}) JSONResponse {
	return JSONResponse{
		Status:  status,
		Message: message,
		Data:    data,
	}
}

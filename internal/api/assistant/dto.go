package assistant

type ChatRequest struct {
	UserID  string `json:"-"`
	Message string `json:"message" validate:"required,min=1,max=500"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

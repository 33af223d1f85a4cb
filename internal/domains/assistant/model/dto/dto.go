package dto

type ChatRequest struct {
	Prompt      string `json:"prompt"      validate:"required,max=2000"`
	Source      string `json:"source"      validate:"omitempty,max=100"`
	Destination string `json:"destination" validate:"omitempty,max=100"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

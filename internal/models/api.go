package models

type UploadResponse struct {
	Message string        `json:"message"`
	Data    *ResumeRecord `json:"data"`
}

type AnalyzeRequest struct {
	ResumeData *ResumeRecord `json:"resume_data" validate:"required"`
	TargetRole string        `json:"target_role" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context,omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

package dto

type UpdateOrderStatusDTO struct {
	NewStatus string `json:"newStatus" validate:"required,order_status"`
	Note      string `json:"note" validate:"max=2000"`
}

type AddCommentDTO struct {
	Message    string `json:"message" validate:"required,max=5000"`
	IsInternal *bool  `json:"isInternal"`
}

type AddTimelineEventDTO struct {
	Event   string  `json:"event" validate:"required,max=255"`
	Details string  `json:"details" validate:"max=5000"`
	Status  *string `json:"status" validate:"omitempty,order_status"`
}

// AttachDocumentDTO carries the document body inline, usually as a base64
// data URL produced by the browser.
type AttachDocumentDTO struct {
	DocumentType string `json:"documentType" validate:"required,document_type"`
	DocumentData string `json:"documentData" validate:"required"`
	Filename     string `json:"filename" validate:"required,max=255"`
	MimeType     string `json:"mimeType" validate:"omitempty,max=100"`
}

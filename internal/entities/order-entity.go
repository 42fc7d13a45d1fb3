package entities

import (
	"time"

	"pharma-order-system/pkg/constants"
)

// Actor is a point-in-time copy of a user's identity. It is stored by value
// and never refreshed from the users table.
type Actor struct {
	UserID string             `json:"userId"`
	Name   string             `json:"name"`
	Role   constants.UserRole `json:"role,omitempty"`
}

type ContactInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Country string `json:"country"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	GSTIN   string `json:"gstin,omitempty"`
}

type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type MaterialItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	SKU         string   `json:"sku,omitempty"`
	HSN         string   `json:"hsn,omitempty"`
	Quantity    Quantity `json:"quantity"`
	UnitPrice   Price    `json:"unitPrice"`
	TotalPrice  Price    `json:"totalPrice"`
	Description string   `json:"description,omitempty"`
}

type FreightHandlerInfo struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Company           string `json:"company"`
	Address           string `json:"address"`
	Country           string `json:"country"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	ContactPerson     string `json:"contactPerson"`
	GSTIN             string `json:"gstin,omitempty"`
	TrackingNumber    string `json:"trackingNumber,omitempty"`
	ShippingMethod    string `json:"shippingMethod,omitempty"`
	EstimatedDelivery string `json:"estimatedDelivery,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

type AdvancePayment struct {
	TransactionID   string    `json:"transactionId"`
	Date            string    `json:"date"`
	Amount          float64   `json:"amount"`
	Currency        string    `json:"currency"`
	TransactionType string    `json:"transactionType"`
	MadeBy          Actor     `json:"madeBy"`
	PaymentProof    *Document `json:"paymentProof,omitempty"`
}

type PaymentDetails struct {
	PaymentMethod string   `json:"paymentMethod,omitempty"`
	BankDetails   string   `json:"bankDetails,omitempty"`
	PaymentTerms  string   `json:"paymentTerms,omitempty"`
	DueDate       string   `json:"dueDate,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}

// AuditLog records exactly one field mutation.
type AuditLog struct {
	Timestamp    time.Time   `json:"timestamp"`
	UserID       string      `json:"userId"`
	UserName     string      `json:"userName"`
	FieldChanged string      `json:"fieldChanged"`
	OldValue     interface{} `json:"oldValue"`
	NewValue     interface{} `json:"newValue"`
	Note         string      `json:"note,omitempty"`
}

// TimelineEvent is a human-readable milestone. Status is a snapshot taken
// when the entry was written.
type TimelineEvent struct {
	ID        string                `json:"id"`
	Timestamp time.Time             `json:"timestamp"`
	Event     string                `json:"event"`
	Actor     Actor                 `json:"actor"`
	Details   string                `json:"details"`
	Status    constants.OrderStatus `json:"status,omitempty"`
}

type Comment struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	Message    string    `json:"message"`
	IsInternal bool      `json:"isInternal"`
}

type Document struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploadedAt"`
	UploadedBy Actor     `json:"uploadedBy"`
	FileSize   int       `json:"fileSize"`
	MimeType   string    `json:"mimeType"`
	Data       string    `json:"data,omitempty"`
}

// Documents holds at most one document per type key.
type Documents map[constants.DocumentType]Document

type ApprovalRequest struct {
	ID            string             `json:"id"`
	Step          string             `json:"step"`
	SentToRole    constants.UserRole `json:"sentToRole"`
	Status        string             `json:"status"`
	RequestedAt   string             `json:"requestedAt"`
	RespondedAt   string             `json:"respondedAt,omitempty"`
	ResponderID   string             `json:"responderId,omitempty"`
	ResponderName string             `json:"responderName,omitempty"`
	Comment       string             `json:"comment,omitempty"`
}

type Order struct {
	ID                       uint64                `json:"id"`
	OrderID                  string                `json:"orderId"`
	CreatedBy                Actor                 `json:"createdBy"`
	AssignedTo               *Actor                `json:"assignedTo"`
	Customer                 ContactInfo           `json:"customer"`
	Supplier                 *ContactInfo          `json:"supplier"`
	MaterialName             string                `json:"materialName"`
	Materials                []MaterialItem        `json:"materials"`
	Quantity                 Quantity              `json:"quantity"`
	PriceToCustomer          Price                 `json:"priceToCustomer"`
	PriceFromSupplier        Price                 `json:"priceFromSupplier"`
	Status                   constants.OrderStatus `json:"status"`
	Documents                Documents             `json:"documents"`
	AdvancePayment           *AdvancePayment       `json:"advancePayment,omitempty"`
	AuditLogs                []AuditLog            `json:"auditLogs"`
	Comments                 []Comment             `json:"comments"`
	ApprovalRequests         []ApprovalRequest     `json:"approvalRequests"`
	Timeline                 []TimelineEvent       `json:"timeline"`
	PONumber                 string                `json:"poNumber,omitempty"`
	DeliveryTerms            string                `json:"deliveryTerms,omitempty"`
	Incoterms                string                `json:"incoterms,omitempty"`
	ETA                      string                `json:"eta,omitempty"`
	Notes                    string                `json:"notes,omitempty"`
	FreightHandler           *FreightHandlerInfo   `json:"freightHandler,omitempty"`
	HSNCode                  string                `json:"hsnCode,omitempty"`
	EnquiryNo                string                `json:"enquiryNo,omitempty"`
	UPC                      string                `json:"upc,omitempty"`
	EAN                      string                `json:"ean,omitempty"`
	MPN                      string                `json:"mpn,omitempty"`
	ISBN                     string                `json:"isbn,omitempty"`
	InventoryAccount         string                `json:"inventoryAccount,omitempty"`
	InventoryValuationMethod string                `json:"inventoryValuationMethod,omitempty"`
	SupplierPOGenerated      bool                  `json:"supplierPOGenerated"`
	SupplierPOSent           bool                  `json:"supplierPOSent"`
	PaymentDetails           *PaymentDetails       `json:"paymentDetails,omitempty"`
	RFID                     string                `json:"rfid,omitempty"`
	Entity                   string                `json:"entity,omitempty"`
	CreatedAt                time.Time             `json:"createdAt"`
	UpdatedAt                time.Time             `json:"updatedAt"`
}

// EnsureCollections replaces nil history collections with empty ones so the
// order always serializes with arrays and an object.
func (o *Order) EnsureCollections() {
	if o.Materials == nil {
		o.Materials = []MaterialItem{}
	}
	if o.AuditLogs == nil {
		o.AuditLogs = []AuditLog{}
	}
	if o.Comments == nil {
		o.Comments = []Comment{}
	}
	if o.ApprovalRequests == nil {
		o.ApprovalRequests = []ApprovalRequest{}
	}
	if o.Timeline == nil {
		o.Timeline = []TimelineEvent{}
	}
	if o.Documents == nil {
		o.Documents = Documents{}
	}
}

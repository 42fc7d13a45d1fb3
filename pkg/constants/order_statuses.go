package constants

// OrderStatus is one of the logistics/approval stages an order moves through.
type OrderStatus string

const (
	StatusPOReceivedFromClient    OrderStatus = "PO_Received_from_Client"
	StatusDraftingPOForSupplier   OrderStatus = "Drafting_PO_for_Supplier"
	StatusSentPOForApproval       OrderStatus = "Sent_PO_for_Approval"
	StatusPORejected              OrderStatus = "PO_Rejected"
	StatusPOApproved              OrderStatus = "PO_Approved"
	StatusPOSentToSupplier        OrderStatus = "PO_Sent_to_Supplier"
	StatusProformaInvoiceReceived OrderStatus = "Proforma_Invoice_Received"
	StatusAwaitingCOA             OrderStatus = "Awaiting_COA"
	StatusCOAReceived             OrderStatus = "COA_Received"
	StatusCOARevision             OrderStatus = "COA_Revision"
	StatusCOAAccepted             OrderStatus = "COA_Accepted"
	StatusAwaitingApproval        OrderStatus = "Awaiting_Approval"
	StatusApproved                OrderStatus = "Approved"
	StatusAdvancePaymentCompleted OrderStatus = "Advance_Payment_Completed"
	StatusMaterialToBeDispatched  OrderStatus = "Material_to_be_Dispatched"
	StatusMaterialDispatched      OrderStatus = "Material_Dispatched"
	StatusInTransit               OrderStatus = "In_Transit"
	StatusCompleted               OrderStatus = "Completed"
)

const DefaultOrderStatus = StatusPOReceivedFromClient

// OrderStatusSequence is the nominal progression of an order. Section
// visibility compares positions in this list, so the order matters.
var OrderStatusSequence = []OrderStatus{
	StatusPOReceivedFromClient,
	StatusDraftingPOForSupplier,
	StatusSentPOForApproval,
	StatusPORejected,
	StatusPOApproved,
	StatusPOSentToSupplier,
	StatusProformaInvoiceReceived,
	StatusAwaitingCOA,
	StatusCOAReceived,
	StatusCOARevision,
	StatusCOAAccepted,
	StatusAwaitingApproval,
	StatusApproved,
	StatusAdvancePaymentCompleted,
	StatusMaterialToBeDispatched,
	StatusMaterialDispatched,
	StatusInTransit,
	StatusCompleted,
}

// StatusIndex returns the position of s in OrderStatusSequence or -1.
func StatusIndex(s OrderStatus) int {
	for i, v := range OrderStatusSequence {
		if v == s {
			return i
		}
	}
	return -1
}

func IsKnownStatus(s string) bool {
	return StatusIndex(OrderStatus(s)) >= 0
}

// Statuses the analytics view groups together.
var (
	InTransitStatuses       = []OrderStatus{StatusMaterialDispatched, StatusInTransit}
	PendingApprovalStatuses = []OrderStatus{StatusSentPOForApproval, StatusAwaitingApproval}
)

func StatusIn(s OrderStatus, set []OrderStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Package visibility decides which order detail sections apply to an
// order's current state.
package visibility

import (
	"pharma-order-system/internal/entities"
	"pharma-order-system/pkg/constants"
)

const (
	SectionOrderSummary              = "orderSummary"
	SectionItemTable                 = "itemTable"
	SectionCustomerSupplierInfo      = "customerSupplierInformation"
	SectionFreightHandlerInformation = "freightHandlerInformation"
	SectionDocuments                 = "documents"
	SectionAdvancePaymentDetails     = "advancePaymentDetails"
	SectionPaymentDetails            = "paymentDetails"
	SectionLogistics                 = "logistics"
)

// AllSections lists every section in display order.
var AllSections = []string{
	SectionOrderSummary,
	SectionItemTable,
	SectionCustomerSupplierInfo,
	SectionFreightHandlerInformation,
	SectionDocuments,
	SectionAdvancePaymentDetails,
	SectionPaymentDetails,
	SectionLogistics,
}

var baseSections = AllSections[:5]

// PaymentStatuses are the statuses under which payment details apply.
var PaymentStatuses = []constants.OrderStatus{
	constants.StatusApproved,
	constants.StatusAdvancePaymentCompleted,
	constants.StatusMaterialToBeDispatched,
	constants.StatusMaterialDispatched,
	constants.StatusInTransit,
}

// Project returns the sections to show for order, in display order. A nil
// order yields every section.
func Project(order *entities.Order) []string {
	if order == nil {
		out := make([]string, len(AllSections))
		copy(out, AllSections)
		return out
	}

	sections := make([]string, 0, len(AllSections))
	sections = append(sections, baseSections...)

	if order.AdvancePayment != nil {
		sections = append(sections, SectionAdvancePaymentDetails)
	}
	if constants.StatusIn(order.Status, PaymentStatuses) {
		sections = append(sections, SectionPaymentDetails)
	}
	if showsLogistics(order.Status) {
		sections = append(sections, SectionLogistics)
	}
	return sections
}

// showsLogistics is true from Material_to_be_Dispatched onwards in the
// nominal sequence. Unknown statuses never show it.
func showsLogistics(status constants.OrderStatus) bool {
	idx := constants.StatusIndex(status)
	return idx >= 0 && idx >= constants.StatusIndex(constants.StatusMaterialToBeDispatched)
}

// Visible reports whether section is part of Project(order).
func Visible(order *entities.Order, section string) bool {
	for _, s := range Project(order) {
		if s == section {
			return true
		}
	}
	return false
}

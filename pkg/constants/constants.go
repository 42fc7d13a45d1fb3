package constants

//============== ROLES ==============

type UserRole string

const (
	RoleEmployee         UserRole = "Employee"
	RoleManager          UserRole = "Manager"
	RoleHigherManagement UserRole = "Higher_Management"
	RoleAdmin            UserRole = "Admin"
)

var UserRoles = []UserRole{RoleEmployee, RoleManager, RoleHigherManagement, RoleAdmin}

// ManagerRoles may see team orders and manage suppliers.
var ManagerRoles = []UserRole{RoleManager, RoleHigherManagement, RoleAdmin}

func IsKnownRole(r string) bool {
	for _, v := range UserRoles {
		if string(v) == r {
			return true
		}
	}
	return false
}

//============== ORDER ENTITIES ==============

// Business entities an order can be booked under.
const (
	EntityHRV = "HRV"
	EntityNHG = "NHG"
)

var OrderEntities = []string{EntityHRV, EntityNHG}

//============== DOCUMENTS ==============

type DocumentType string

const (
	DocCustomerPO      DocumentType = "customerPO"
	DocSupplierPO      DocumentType = "supplierPO"
	DocQuotation       DocumentType = "quotation"
	DocProformaInvoice DocumentType = "proformaInvoice"
	DocCOAPreShipment  DocumentType = "coaPreShipment"
	DocPaymentProof    DocumentType = "paymentProof"
	DocSignedPI        DocumentType = "signedPI"
)

var DocumentTypes = []DocumentType{
	DocCustomerPO, DocSupplierPO, DocQuotation, DocProformaInvoice,
	DocCOAPreShipment, DocPaymentProof, DocSignedPI,
}

func IsKnownDocumentType(s string) bool {
	for _, v := range DocumentTypes {
		if string(v) == s {
			return true
		}
	}
	return false
}

const DefaultDocumentMimeType = "application/pdf"

//============== PUBLIC IDS ==============

const (
	SupplierIDPrefix       = "SUP"
	SupplierIDWidth        = 3
	ProductIDPrefix        = "PROD"
	ProductIDWidth         = 6
	FreightHandlerIDPrefix = "FH"
	FreightHandlerIDWidth  = 3
)

//============== MISC ==============

const (
	DefaultSupplierCountry = "India"
	DefaultMaterialStatus  = "Active"
)

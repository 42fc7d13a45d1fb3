package seeders

import "pharma-order-system/pkg/constants"

type userSeed struct {
	UserID   string
	Name     string
	Email    string
	Password string
	Role     constants.UserRole
	Team     string
}

var usersData = []userSeed{
	{"user-admin", "System Admin", "admin@pharma.local", "admin123", constants.RoleAdmin, ""},
	{"user-hm", "Head of Procurement", "head@pharma.local", "head123", constants.RoleHigherManagement, "procurement"},
	{"user-manager", "Procurement Manager", "manager@pharma.local", "manager123", constants.RoleManager, "procurement"},
	{"user-employee", "Procurement Executive", "employee@pharma.local", "employee123", constants.RoleEmployee, "procurement"},
}

type supplierSeed struct {
	SupplierID     string
	Name           string
	City           string
	State          string
	Country        string
	Email          string
	SourceOfSupply string
	Specialties    []string
}

var suppliersData = []supplierSeed{
	{"SUP001", "Shree Ganesh Chemicals", "Ahmedabad", "Gujarat", "India", "sales@shreeganesh.example", "Gujarat", []string{"APIs", "Solvents"}},
	{"SUP002", "Hetero Labs", "Hyderabad", "Telangana", "India", "orders@hetero.example", "Telangana", []string{"APIs"}},
	{"SUP003", "Zhejiang Pharma Trading", "Hangzhou", "Zhejiang", "China", "export@zjpharma.example", "", []string{"Intermediates"}},
	{"SUP004", "BASF Pharma Solutions", "Ludwigshafen", "Rhineland-Palatinate", "Germany", "pharma@basf.example", "", []string{"Excipients"}},
}

type freightHandlerSeed struct {
	FreightHandlerID string
	Name             string
	Company          string
	Country          string
	Phone            string
}

var freightHandlersData = []freightHandlerSeed{
	{"FH001", "Rajesh Kumar", "Blue Dart Logistics", "India", "+91 22 2839 6444"},
	{"FH002", "Anita Sharma", "DHL Global Forwarding", "India", "+91 124 423 8000"},
	{"FH003", "Li Wei", "Sinotrans", "China", "+86 10 5229 6666"},
}

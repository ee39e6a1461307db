package model

// Branch is an organizational unit. It owns documents and doubles as a user's role.
type Branch string

const (
	BranchAdmin          Branch = "ADMIN"
	BranchProcurement    Branch = "PROCUREMENT"
	BranchAssets         Branch = "ASSETS"
	BranchTransport      Branch = "TRANSPORT"
	BranchFinance        Branch = "FINANCE"
	BranchControl        Branch = "CONTROL"
	BranchInvoice        Branch = "INVOICE"
	BranchGeneralManager Branch = "GENERAL_MANAGER"
)

// Branches lists every branch in display order.
var Branches = []Branch{
	BranchAdmin,
	BranchProcurement,
	BranchAssets,
	BranchTransport,
	BranchFinance,
	BranchControl,
	BranchInvoice,
	BranchGeneralManager,
}

// Valid reports whether b is one of the fixed branches.
func (b Branch) Valid() bool {
	for _, v := range Branches {
		if v == b {
			return true
		}
	}
	return false
}

// registrationTypes maps each branch that owns a registration flow to the document types it may register.
var registrationTypes = map[Branch][]DocType{
	BranchAdmin:       {DocTypeLetter, DocTypeProposal, DocTypeInquiry},
	BranchProcurement: {DocTypeProposal, DocTypeInvoice},
	BranchAssets:      {DocTypeM7, DocTypeM16},
}

// CanRegister reports whether documents of type t may be registered under branch b.
func (b Branch) CanRegister(t DocType) bool {
	for _, v := range registrationTypes[b] {
		if v == t {
			return true
		}
	}
	return false
}

// RegistersDocuments reports whether b has a registration flow at all.
func (b Branch) RegistersDocuments() bool {
	_, ok := registrationTypes[b]
	return ok
}

// User is the identity attached to a request. It is not persisted.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"fullName"`
	Role        Branch `json:"role"`
}

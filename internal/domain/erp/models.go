package erp

import "time"

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	TaxID   string `json:"taxId"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

const (
	CategoryDeeds            = "deeds"
	CategoryCertificates     = "certificates"
	CategoryContracts        = "contracts"
	CategoryBankDocuments    = "bank_documents"
	CategoryTaxAgency        = "tax_agency"
	CategorySocialSecurity   = "social_security"
	CategoryInvoicesIssued   = "invoices_issued"
	CategoryInvoicesReceived = "invoices_received"
)

var FileCategories = []string{
	CategoryDeeds, CategoryCertificates, CategoryContracts, CategoryBankDocuments,
	CategoryTaxAgency, CategorySocialSecurity, CategoryInvoicesIssued, CategoryInvoicesReceived,
}

type File struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	UploadedAt    time.Time `json:"uploadedAt"`
	InvoiceNumber string    `json:"invoiceNumber,omitempty"`
}

func ValidCategory(category string) bool {
	for _, candidate := range FileCategories {
		if candidate == category {
			return true
		}
	}
	return false
}

package workforce

import "time"

// Document is an employee file reference with an optional expiry used by the
// proactive alert scan.
type Document struct {
	Name       string     `json:"name"`
	UploadedAt *time.Time `json:"uploadedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

type Employee struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"firstName"`
	MiddleName     string     `json:"middleName,omitempty"`
	LastName       string     `json:"lastName"`
	SecondLastName string     `json:"secondLastName,omitempty"`
	Nickname       string     `json:"nickname,omitempty"`
	Role           string     `json:"role"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	HiredAt        *time.Time `json:"hiredAt,omitempty"`
	ContractEnd    *time.Time `json:"contractEnd,omitempty"`
	Active         bool       `json:"active"`
	NationalID     string     `json:"nationalId,omitempty"`
	SocialSecurity string     `json:"socialSecurityNumber,omitempty"`
	BankAccount    string     `json:"bankAccount,omitempty"`
	Position       string     `json:"position,omitempty"`
	WorkSchedule   string     `json:"workSchedule,omitempty"`
	ContractType   string     `json:"contractType,omitempty"`
	WorkingDay     string     `json:"workingDay,omitempty"`
	PasswordHash   string     `json:"-"`

	MandatoryDocuments  []Document `json:"mandatoryDocuments,omitempty"`
	LaborDocuments      []Document `json:"laborDocuments,omitempty"`
	AdditionalDocuments []Document `json:"additionalDocuments,omitempty"`
	Payslips            []Document `json:"payslips,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName joins the populated name parts.
func (e Employee) FullName() string {
	name := e.FirstName
	if e.LastName != "" {
		name += " " + e.LastName
	}
	return name
}

// AllDocuments flattens every document group for expiry scanning.
func (e Employee) AllDocuments() []Document {
	out := make([]Document, 0, len(e.MandatoryDocuments)+len(e.LaborDocuments)+len(e.AdditionalDocuments))
	out = append(out, e.MandatoryDocuments...)
	out = append(out, e.LaborDocuments...)
	out = append(out, e.AdditionalDocuments...)
	return out
}

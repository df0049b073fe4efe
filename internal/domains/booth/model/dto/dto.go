package dto

import (
	"boothdesk/internal/domains/booth/model"
)

// BoothForm holds the admin create/edit form state. Number is required on
// create and immutable afterwards; the edit flow pre-fills it and must not
// let it change.
type BoothForm struct {
	Number           int    `validate:"required,gte=1"`
	Category         string `validate:"omitempty,oneof=diamond gold silver other"`
	Status           string `validate:"omitempty,oneof=empty occupied"`
	CompanyName      string
	CompanyWebsite   string
	CompanyShortText string
	ContactName      string
	ContactPhone     string
	ContactEmail     string
	CompanyLogoURL   string
}

// FormFromBooth pre-fills an edit form from a remote record.
func FormFromBooth(b model.Booth) BoothForm {
	return BoothForm{
		Number:           b.Number,
		Category:         b.Category,
		Status:           b.Status,
		CompanyName:      b.CompanyName,
		CompanyWebsite:   b.CompanyWebsite,
		CompanyShortText: b.CompanyShortText,
		ContactName:      b.ContactName,
		ContactPhone:     b.ContactPhone,
		ContactEmail:     b.ContactEmail,
		CompanyLogoURL:   b.CompanyLogoURL,
	}
}

// BoothPayload is the JSON body for booth create and update calls. Blank
// optional fields are omitted entirely rather than sent as empty strings.
type BoothPayload struct {
	Number           int    `json:"number"`
	Category         string `json:"category"`
	Status           string `json:"status"`
	CompanyName      string `json:"companyName,omitempty"`
	CompanyWebsite   string `json:"companyWebsite,omitempty"`
	CompanyShortText string `json:"companyShortText,omitempty"`
	ContactName      string `json:"contactName,omitempty"`
	ContactPhone     string `json:"contactPhone,omitempty"`
	ContactEmail     string `json:"contactEmail,omitempty"`
	CompanyLogoURL   string `json:"companyLogoUrl,omitempty"`
}

// ToPayload builds the full request body. Create and update both resend every
// form field; there is no partial diffing. Blank category and status fall
// back to the record defaults.
func (f *BoothForm) ToPayload() BoothPayload {
	category := f.Category
	if category == "" {
		category = model.CategoryOther
	}

	status := f.Status
	if status == "" {
		status = model.StatusEmpty
	}

	return BoothPayload{
		Number:           f.Number,
		Category:         category,
		Status:           status,
		CompanyName:      f.CompanyName,
		CompanyWebsite:   f.CompanyWebsite,
		CompanyShortText: f.CompanyShortText,
		ContactName:      f.ContactName,
		ContactPhone:     f.ContactPhone,
		ContactEmail:     f.ContactEmail,
		CompanyLogoURL:   f.CompanyLogoURL,
	}
}

// BookingRequestPayload is the public booking call body.
type BookingRequestPayload struct {
	BoothNumber int    `json:"boothNumber"`
	BoothName   string `json:"boothName"`
}

// BookResponse is the booking endpoint reply. RedirectURL carries the
// navigation target on success.
type BookResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
	Error       string `json:"error"`
}

// UploadLogoResponse is the logo upload reply.
type UploadLogoResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Error   string `json:"error"`
}

// DeleteResponse is the booth delete reply.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

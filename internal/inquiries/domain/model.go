package domain

import "time"

// Services are the engagement types offered on the contact form.
var Services = []string{
	"Rooftop & Ground-Mounted Solar EPC",
	"Industrial & Commercial Electrical Works",
	"HT / LT Panel Installation & Maintenance",
	"Energy Audits & Load Analysis",
	"System Upgrades & Safety Compliance",
	"Monitoring, O&M & AMC Support",
}

// Source identifies which surface an inquiry was submitted through.
type Source string

const (
	SourceWebForm Source = "web_form"
	SourceAPI     Source = "api"
)

// Inquiry is a contact request left by a prospective customer.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Service   string    `json:"service,omitempty"`
	Message   string    `json:"message"`
	Source    Source    `json:"source"`
	RemoteIP  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// NewInquiryInput is the untrusted payload from the form or the API.
type NewInquiryInput struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Company string `json:"company" form:"company"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	minNameLen    = 2
	maxNameLen    = 120
	maxEmailLen   = 254
	minPhoneLen   = 7
	maxPhoneLen   = 20
	maxCompanyLen = 160
	minMessageLen = 10
	maxMessageLen = 4000
)

// Normalize trims every field in place.
func (in *NewInquiryInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Service = strings.TrimSpace(in.Service)
	in.Message = strings.TrimSpace(in.Message)
}

// Validate normalizes the input and returns a *ValidationError listing every
// bad field, or nil.
func (in *NewInquiryInput) Validate() error {
	in.Normalize()
	fields := map[string]string{}

	switch n := utf8.RuneCountInString(in.Name); {
	case n == 0:
		fields["name"] = "is required"
	case n < minNameLen || n > maxNameLen:
		fields["name"] = "must be between 2 and 120 characters"
	}

	switch {
	case in.Email == "":
		fields["email"] = "is required"
	case len(in.Email) > maxEmailLen || !looksLikeEmail(in.Email):
		fields["email"] = "must be a valid email address"
	}

	if in.Phone != "" && !looksLikePhone(in.Phone) {
		fields["phone"] = "must be 7 to 20 digits, spaces or +-()"
	}

	if utf8.RuneCountInString(in.Company) > maxCompanyLen {
		fields["company"] = "must be at most 160 characters"
	}

	if in.Service != "" && !knownService(in.Service) {
		fields["service"] = "is not a service we offer"
	}

	switch n := utf8.RuneCountInString(in.Message); {
	case n == 0:
		fields["message"] = "is required"
	case n < minMessageLen || n > maxMessageLen:
		fields["message"] = "must be between 10 and 4000 characters"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func looksLikeEmail(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	host := s[at+1:]
	dot := strings.IndexByte(host, '.')
	return dot > 0 && dot < len(host)-1
}

func looksLikePhone(s string) bool {
	if len(s) < minPhoneLen || len(s) > maxPhoneLen {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= minPhoneLen
}

func knownService(s string) bool {
	for _, v := range Services {
		if v == s {
			return true
		}
	}
	return false
}

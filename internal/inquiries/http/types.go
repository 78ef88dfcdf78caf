package http

import "github.com/vrgreentek/greentek-site/internal/inquiries/service"

type Handler struct {
	svc *service.InquiryService
}

func New(svc *service.InquiryService) *Handler {
	return &Handler{svc: svc}
}

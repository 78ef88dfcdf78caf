package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vrgreentek/greentek-site/internal/inquiries/domain"
	"github.com/vrgreentek/greentek-site/internal/inquiries/ratelimit"
	"github.com/vrgreentek/greentek-site/internal/inquiries/repository"
)

// InquiryService accepts contact requests from the site and the API.
type InquiryService struct {
	repo    repository.Repository
	limiter ratelimit.Limiter
	log     *zap.Logger
	now     func() time.Time
}

// NewInquiryService wires the service. A nil limiter disables throttling.
func NewInquiryService(repo repository.Repository, limiter ratelimit.Limiter, log *zap.Logger) *InquiryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &InquiryService{
		repo:    repo,
		limiter: limiter,
		log:     log.Named("inquiries"),
		now:     time.Now,
	}
}

// Submit validates the input, applies the per-client limit and stores the inquiry.
func (s *InquiryService) Submit(ctx context.Context, in domain.NewInquiryInput, source domain.Source, remoteIP string) (*domain.Inquiry, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if s.limiter != nil && remoteIP != "" {
		allowed, err := s.limiter.Allow(ctx, remoteIP)
		switch {
		case err != nil:
			// Fail open: a limiter outage must not drop leads.
			s.log.Warn("rate limiter error, allowing submission", zap.Error(err))
		case !allowed:
			s.log.Info("inquiry rate limited", zap.String("remote_ip", remoteIP))
			return nil, domain.ErrRateLimited
		}
	}

	inq := &domain.Inquiry{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Service:   in.Service,
		Message:   in.Message,
		Source:    source,
		RemoteIP:  remoteIP,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, inq); err != nil {
		s.log.Error("failed to store inquiry", zap.String("id", inq.ID), zap.Error(err))
		return nil, err
	}

	s.log.Info("inquiry received",
		zap.String("id", inq.ID),
		zap.String("source", string(source)),
		zap.String("service", inq.Service),
	)
	return inq, nil
}

// Get returns a stored inquiry.
func (s *InquiryService) Get(ctx context.Context, id string) (*domain.Inquiry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrNotFound
	}
	return s.repo.Get(ctx, id)
}

// Recent lists the newest inquiries.
func (s *InquiryService) Recent(ctx context.Context, limit int) ([]domain.Inquiry, error) {
	return s.repo.ListRecent(ctx, limit)
}

// Purge deletes inquiries older than retention and reports how many went.
func (s *InquiryService) Purge(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, errors.New("retention must be positive")
	}
	cutoff := s.now().UTC().Add(-retention)

	n, err := s.repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	s.log.Info("purged old inquiries", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))
	return n, nil
}

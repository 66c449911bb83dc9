package cart

import (
	"context"

	"github.com/bojietech/storefront/internal/domain/cart"
	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InquiryService freezes carts into inquiries and serves the admin
// sales workflow
type InquiryService struct {
	store       cart.Store
	inquiryRepo cart.InquiryRepository
	logger      *zap.Logger
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(store cart.Store, inquiryRepo cart.InquiryRepository, logger *zap.Logger) *InquiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InquiryService{store: store, inquiryRepo: inquiryRepo, logger: logger}
}

// Submit freezes the visitor's cart into an inquiry and clears the
// cart. The cart must have at least one item.
func (s *InquiryService) Submit(ctx context.Context, cartID string, req SubmitInquiryRequest) (*InquiryResponse, error) {
	if err := cart.ValidateCartID(cartID); err != nil {
		return nil, err
	}
	c, err := s.store.Load(ctx, cartID)
	if err != nil {
		return nil, shared.ErrStoreUnavailable
	}

	inquiry, err := cart.NewInquiry(c, cart.ContactInfo{
		Name:   req.ContactName,
		Phone:  req.ContactPhone,
		Email:  req.ContactEmail,
		Remark: req.Remark,
	})
	if err != nil {
		return nil, err
	}

	if err := s.inquiryRepo.Save(ctx, inquiry); err != nil {
		return nil, err
	}

	// The inquiry is already durable; a failed cart clear only leaves
	// stale lines behind, so log and move on.
	if err := s.store.Delete(ctx, cartID); err != nil {
		s.logger.Warn("cart clear after submit failed",
			zap.String("cart_id", cartID),
			zap.String("inquiry_number", inquiry.Number),
			zap.Error(err),
		)
	}

	response := ToInquiryResponse(inquiry)
	return &response, nil
}

// GetByNumber returns one inquiry by its human-readable number
func (s *InquiryService) GetByNumber(ctx context.Context, number string) (*InquiryResponse, error) {
	inquiry, err := s.inquiryRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	response := ToInquiryResponse(inquiry)
	return &response, nil
}

// List returns a page of inquiries for the admin table, newest first
func (s *InquiryService) List(ctx context.Context, filter InquiryListFilter) ([]InquiryResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	inquiries, total, err := s.inquiryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToInquiryResponses(inquiries), total, nil
}

// UpdateStatus moves an inquiry through the sales workflow
func (s *InquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateInquiryStatusRequest) (*InquiryResponse, error) {
	inquiry, err := s.inquiryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := inquiry.SetStatus(cart.InquiryStatus(req.Status)); err != nil {
		return nil, err
	}
	if err := s.inquiryRepo.Save(ctx, inquiry); err != nil {
		return nil, err
	}
	response := ToInquiryResponse(inquiry)
	return &response, nil
}

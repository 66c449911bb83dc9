package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
)

// InquiryStatus tracks the sales follow-up of a submitted cart
type InquiryStatus string

const (
	InquiryStatusSubmitted InquiryStatus = "submitted"
	InquiryStatusQuoted    InquiryStatus = "quoted"
	InquiryStatusClosed    InquiryStatus = "closed"
)

// InquiryItem is a frozen cart line inside a submitted inquiry
type InquiryItem struct {
	shared.BaseEntity
	InquiryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductCode string    `gorm:"type:varchar(50);not null"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	Quantity    int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (InquiryItem) TableName() string {
	return "inquiry_items"
}

// Inquiry is a submitted cart awaiting a quotation. It carries its own
// human-readable number so sales staff can reference it in chat.
type Inquiry struct {
	shared.BaseAggregateRoot
	Number       string        `gorm:"type:varchar(30);not null;uniqueIndex"`
	Status       InquiryStatus `gorm:"type:varchar(20);not null;default:'submitted'"`
	ContactName  string        `gorm:"type:varchar(100)"`
	ContactPhone string        `gorm:"type:varchar(50)"`
	ContactEmail string        `gorm:"type:varchar(100)"`
	Remark       string        `gorm:"type:text"`
	Items        []InquiryItem `gorm:"foreignKey:InquiryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Inquiry) TableName() string {
	return "inquiries"
}

// ContactInfo is the optional contact block attached on submission
type ContactInfo struct {
	Name   string
	Phone  string
	Email  string
	Remark string
}

// NewInquiry freezes a non-empty cart into an inquiry
func NewInquiry(c *Cart, contact ContactInfo) (*Inquiry, error) {
	if c == nil || c.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	inquiry := &Inquiry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            newInquiryNumber(),
		Status:            InquiryStatusSubmitted,
		ContactName:       strings.TrimSpace(contact.Name),
		ContactPhone:      strings.TrimSpace(contact.Phone),
		ContactEmail:      strings.TrimSpace(contact.Email),
		Remark:            contact.Remark,
	}
	for _, item := range c.Items {
		inquiry.Items = append(inquiry.Items, InquiryItem{
			BaseEntity:  shared.NewBaseEntity(),
			InquiryID:   inquiry.ID,
			ProductID:   item.ProductID,
			ProductCode: item.ProductCode,
			ProductName: item.ProductName,
			ImageURL:    item.ImageURL,
			Quantity:    item.Quantity,
		})
	}
	return inquiry, nil
}

// SetStatus moves the inquiry through the sales workflow
func (i *Inquiry) SetStatus(status InquiryStatus) error {
	switch status {
	case InquiryStatusSubmitted, InquiryStatusQuoted, InquiryStatusClosed:
	default:
		return shared.NewDomainError("INVALID_STATUS", "Unknown inquiry status")
	}
	i.Status = status
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// newInquiryNumber builds a date-prefixed reference like INQ-20260828-1A2B3C
func newInquiryNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return fmt.Sprintf("INQ-%s-%s", time.Now().Format("20060102"), suffix)
}

// InquiryRepository is the persistence contract for inquiries
type InquiryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	FindByNumber(ctx context.Context, number string) (*Inquiry, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Inquiry, int64, error)
	Save(ctx context.Context, inquiry *Inquiry) error
}

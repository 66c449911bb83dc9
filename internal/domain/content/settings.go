package content

import (
	"context"
	"time"

	"github.com/bojietech/storefront/internal/domain/shared"
)

// Settings holds the company profile shown across the storefront.
// A single row exists; it is created with defaults on first access.
type Settings struct {
	shared.BaseAggregateRoot
	CompanyName           string `gorm:"type:varchar(200);not null"`
	CompanyLogo           string `gorm:"type:varchar(500)"`
	CompanyDescription    string `gorm:"type:text"`
	ContactPhone          string `gorm:"type:varchar(50)"`
	ContactEmail          string `gorm:"type:varchar(100)"`
	ContactAddress        string `gorm:"type:varchar(300)"`
	CustomerServiceQRCode string `gorm:"type:varchar(500)"`
	WechatNumber          string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (Settings) TableName() string {
	return "settings"
}

// DefaultSettings returns the factory company profile
func DefaultSettings() *Settings {
	return &Settings{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		CompanyName:        "汕头博捷科技有限公司",
		CompanyLogo:        "博捷科技",
		CompanyDescription: "专业提供化妆品定制、批量生产、样品申请和设计咨询服务",
		ContactPhone:       "+86 123 4567 8910",
		ContactEmail:       "contact@bojietech.com",
		ContactAddress:     "广东省汕头市某某区某某路88号",
		WechatNumber:       "bojie_tech",
	}
}

// Update replaces the company profile fields
func (s *Settings) Update(companyName, companyLogo, companyDescription, contactPhone, contactEmail, contactAddress, qrCode, wechatNumber string) error {
	if companyName == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	s.CompanyName = companyName
	s.CompanyLogo = companyLogo
	s.CompanyDescription = companyDescription
	s.ContactPhone = contactPhone
	s.ContactEmail = contactEmail
	s.ContactAddress = contactAddress
	s.CustomerServiceQRCode = qrCode
	s.WechatNumber = wechatNumber
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SettingsRepository persists the singleton settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}

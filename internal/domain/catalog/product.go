package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bojietech/storefront/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType distinguishes the two manufactured packaging families
type ProductType string

const (
	ProductTypeTube ProductType = "tube"
	ProductTypeBox  ProductType = "box"
)

// ImageKind classifies a product image slot
type ImageKind string

const (
	ImageKindMain       ImageKind = "main"
	ImageKindGallery    ImageKind = "gallery"
	ImageKindDimensions ImageKind = "dimensions"
	ImageKindDetail     ImageKind = "detail"
)

// StringList is a list of classification values stored as a JSON column.
// Upstream data is duck-typed: the same field arrives either as a bare
// string ("磁吸/回弹") or as a proper array. It is normalized to a
// canonical []string exactly once, here at the unmarshal boundary.
type StringList []string

// UnmarshalJSON accepts both the string and the array form
func (l *StringList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*l = normalizeValues(values)
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return fmt.Errorf("string list: expected string or array: %w", err)
	}
	*l = SplitValues(single)
	return nil
}

// Value implements driver.Valuer for JSON column storage
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal([]string(l))
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return l.UnmarshalJSON(v)
	case string:
		return l.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("string list: cannot scan %T", value)
	}
}

// Contains reports whether the list holds the exact value
func (l StringList) Contains(value string) bool {
	for _, v := range l {
		if v == value {
			return true
		}
	}
	return false
}

// SplitValues splits a composite classification value ("磁吸/回弹") into
// its parts, trimming whitespace and dropping empties
func SplitValues(raw string) []string {
	parts := strings.Split(raw, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func normalizeValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// CapacityRange is a milliliter interval, inclusive at both ends
type CapacityRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Dimensions holds the physical measurements of a product.
// Stored as a single JSON column since the shape varies by product family.
type Dimensions struct {
	Weight       float64        `json:"weight,omitempty"`
	Length       float64        `json:"length,omitempty"`
	Width        float64        `json:"width,omitempty"`
	Height       float64        `json:"height,omitempty"`
	Capacity     *CapacityRange `json:"capacity,omitempty"`
	Compartments int            `json:"compartments,omitempty"`
}

// Value implements driver.Valuer for JSON column storage
func (d Dimensions) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner
func (d *Dimensions) Scan(value interface{}) error {
	if value == nil {
		*d = Dimensions{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("dimensions: cannot scan %T", value)
	}
}

func (d Dimensions) validate() error {
	if d.Capacity != nil && d.Capacity.Min > d.Capacity.Max {
		return shared.NewDomainError("INVALID_CAPACITY", "Capacity minimum cannot exceed maximum")
	}
	if d.Compartments < 0 {
		return shared.NewDomainError("INVALID_COMPARTMENTS", "Compartment count cannot be negative")
	}
	return nil
}

// ProductImage is an ordered image attached to a product
type ProductImage struct {
	shared.BaseEntity
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL       string    `gorm:"type:varchar(500);not null"`
	Kind      ImageKind `gorm:"type:varchar(20);not null;default:'gallery'"`
	SortOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductImage) TableName() string {
	return "product_images"
}

// Product is a catalog item: a lipstick tube, a compact case, a gift box.
// It is the aggregate root for all storefront browsing and admin editing.
type Product struct {
	shared.BaseAggregateRoot
	Code                     string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name                     string          `gorm:"type:varchar(200);not null"`
	Description              string          `gorm:"type:text"`
	ProductType              ProductType     `gorm:"type:varchar(20);not null;index"`
	TubeType                 string          `gorm:"type:varchar(50);index"`
	BoxType                  string          `gorm:"type:varchar(50);index"`
	ProcessType              string          `gorm:"type:varchar(50)"`
	Shape                    string          `gorm:"type:varchar(50)"`
	Material                 string          `gorm:"type:varchar(100)"`
	FunctionalDesigns        StringList      `gorm:"type:jsonb"`
	DevelopmentLineMaterials StringList      `gorm:"type:jsonb"`
	Dimensions               Dimensions      `gorm:"type:jsonb"`
	CostPrice                decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	FactoryPrice             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	HasSample                bool            `gorm:"not null;default:false"`
	BoxDimensions            string          `gorm:"type:varchar(100)"` // Packing carton size, free text
	BoxQuantity              int             `gorm:"not null;default:0"`
	InStock                  bool            `gorm:"not null;default:true"`
	PopularityScore          int             `gorm:"not null;default:0;index"`
	Images                   []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(code, name string, productType ProductType) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if productType != ProductTypeTube && productType != ProductTypeBox {
		return nil, shared.NewDomainError("INVALID_PRODUCT_TYPE", "Product type must be tube or box")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(strings.TrimSpace(code)),
		Name:              strings.TrimSpace(name),
		ProductType:       productType,
		CostPrice:         decimal.Zero,
		FactoryPrice:      decimal.Zero,
		InStock:           true,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.touch()
	return nil
}

// UpdateCode changes the SKU code. Uniqueness is enforced by the repository.
func (p *Product) UpdateCode(code string) error {
	if err := validateProductCode(code); err != nil {
		return err
	}
	p.Code = strings.ToUpper(strings.TrimSpace(code))
	p.touch()
	return nil
}

// SetClassification sets the filterable classification facets
func (p *Product) SetClassification(tubeType, boxType, processType, shape, material string, functionalDesigns, developmentLineMaterials StringList) {
	p.TubeType = tubeType
	p.BoxType = boxType
	p.ProcessType = processType
	p.Shape = shape
	p.Material = material
	p.FunctionalDesigns = functionalDesigns
	p.DevelopmentLineMaterials = developmentLineMaterials
	p.touch()
}

// SetDimensions replaces the physical measurements
func (p *Product) SetDimensions(dims Dimensions) error {
	if err := dims.validate(); err != nil {
		return err
	}
	p.Dimensions = dims
	p.touch()
	return nil
}

// SetPricing sets the quotation fields shown to sales staff
func (p *Product) SetPricing(costPrice, factoryPrice decimal.Decimal, hasSample bool, boxDimensions string, boxQuantity int) error {
	if costPrice.IsNegative() || factoryPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if boxQuantity < 0 {
		return shared.NewDomainError("INVALID_BOX_QUANTITY", "Box quantity cannot be negative")
	}
	p.CostPrice = costPrice
	p.FactoryPrice = factoryPrice
	p.HasSample = hasSample
	p.BoxDimensions = boxDimensions
	p.BoxQuantity = boxQuantity
	p.touch()
	return nil
}

// SetAvailability updates stock status and popularity
func (p *Product) SetAvailability(inStock bool, popularityScore int) {
	p.InStock = inStock
	p.PopularityScore = popularityScore
	p.touch()
}

// MainImage returns the main image URL, or the first image as fallback
func (p *Product) MainImage() string {
	for _, img := range p.Images {
		if img.Kind == ImageKindMain {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// HasCapacity reports whether the product declares a capacity interval
func (p *Product) HasCapacity() bool {
	return p.Dimensions.Capacity != nil
}

func (p *Product) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

func validateProductCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	return nil
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

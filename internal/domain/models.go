package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// BaseModel holds the identity and timestamp fields shared by all entities.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not provide one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// ConfigurationKind is the closed set of product categories an order belongs to.
type ConfigurationKind string

const (
	ConfigStationary     ConfigurationKind = "stationary"
	ConfigStraightSlider ConfigurationKind = "straight-slider"
	ConfigCornerSlider   ConfigurationKind = "corner-slider"
	ConfigUnique         ConfigurationKind = "unique"
	ConfigPartition      ConfigurationKind = "partition"
	ConfigUnknown        ConfigurationKind = "unknown"
)

// KnownConfigurations lists every non-unknown configuration kind in display order.
var KnownConfigurations = []ConfigurationKind{
	ConfigStationary,
	ConfigStraightSlider,
	ConfigCornerSlider,
	ConfigUnique,
	ConfigPartition,
}

// IsValid checks if the ConfigurationKind is a valid enum value
func (k ConfigurationKind) IsValid() bool {
	switch k {
	case ConfigStationary, ConfigStraightSlider, ConfigCornerSlider, ConfigUnique, ConfigPartition, ConfigUnknown:
		return true
	}
	return false
}

// BaseCostMode selects how the margin calculator derives the base cost share.
type BaseCostMode string

const (
	BaseCostModeFixed      BaseCostMode = "fixed"
	BaseCostModePercentage BaseCostMode = "percentage"
)

// PriceChange is one entry of a project's price audit trail.
type PriceChange struct {
	Price float64   `json:"price"`
	Date  time.Time `json:"date"`
}

// PriceHistory is the append-only sequence of price changes. The analytics
// core only ever reads it; the last entry mirrors the project's current price.
type PriceHistory []PriceChange

// Value implements driver.Valuer so the history is stored as jsonb.
func (h PriceHistory) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (h *PriceHistory) Scan(src interface{}) error {
	return scanJSON(src, h)
}

// StatusChange is one entry of a project's status audit trail. StatusID may be
// nil and Status empty for legacy records; Date is chronologically
// non-decreasing across the sequence.
type StatusChange struct {
	StatusID *uuid.UUID `json:"statusId,omitempty"`
	Status   string     `json:"status,omitempty"`
	Date     time.Time  `json:"date"`
}

// StatusHistory is the append-only sequence of status transitions.
type StatusHistory []StatusChange

// Value implements driver.Valuer so the history is stored as jsonb.
func (h StatusHistory) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (h *StatusHistory) Scan(src interface{}) error {
	return scanJSON(src, h)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported source type %T for json column", src)
	}
}

// ProjectData holds the free-form configuration attributes of an order.
// Width, height and length arrive as numeric strings from the intake form and
// may be absent or unparsable; consumers must tolerate both.
type ProjectData struct {
	Configuration  ConfigurationKind `gorm:"type:varchar(50);not null;default:'unknown';index" json:"configuration"`
	GlassColor     string            `gorm:"type:varchar(100)" json:"glassColor,omitempty"`
	GlassThickness string            `gorm:"type:varchar(50)" json:"glassThickness,omitempty"`
	HardwareColor  string            `gorm:"type:varchar(100)" json:"hardwareColor,omitempty"`
	Width          string            `gorm:"type:varchar(50)" json:"width,omitempty"`
	Height         string            `gorm:"type:varchar(50)" json:"height,omitempty"`
	Length         string            `gorm:"type:varchar(50)" json:"length,omitempty"`
	CustomColor    bool              `gorm:"not null;default:false" json:"customColor"`
}

// Project represents one customer order. The analytics core never writes
// projects; price and status mutations are owned by the intake application,
// which appends to the history columns and never rewrites them.
type Project struct {
	BaseModel
	CompanyID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"companyId"`
	Customer      string        `gorm:"type:varchar(200);index" json:"customer"`
	Price         float64       `gorm:"type:decimal(15,2);not null;default:0" json:"price"`
	PriceHistory  PriceHistory  `gorm:"type:jsonb" json:"priceHistory"`
	StatusID      *uuid.UUID    `gorm:"type:uuid;index" json:"statusId,omitempty"`
	Status        string        `gorm:"type:varchar(200)" json:"status"`
	StatusHistory StatusHistory `gorm:"type:jsonb" json:"statusHistory"`
	Data          ProjectData   `gorm:"embedded;embeddedPrefix:data_" json:"data"`
}

// Status represents a per-tenant workflow stage of the kanban board.
// IsCompletedForAnalytics is the authoritative completion flag; the free-text
// Name is still matched for records created before structured statuses existed.
type Status struct {
	BaseModel
	CompanyID               uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	Name                    string    `gorm:"type:varchar(200);not null" json:"name"`
	Color                   string    `gorm:"type:varchar(20);not null;default:'#9E9E9E'" json:"color"`
	SortOrder               int       `gorm:"not null;default:0;column:sort_order" json:"order"`
	IsCompletedForAnalytics bool      `gorm:"not null;default:false;column:is_completed_for_analytics" json:"isCompletedForAnalytics"`
	IsDefault               bool      `gorm:"not null;default:false;column:is_default" json:"isDefault"`
}

// Setting is the per-tenant configuration singleton consumed by the margin
// calculator and the completion classifier.
type Setting struct {
	BaseModel
	CompanyID            uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"companyId"`
	Currency             string         `gorm:"type:varchar(10);not null;default:'RUB'" json:"currency"`
	UsdRate              float64        `gorm:"type:decimal(15,4);not null;default:0" json:"usdRate"`
	RrRate               float64        `gorm:"type:decimal(15,4);not null;default:0;column:rr_rate" json:"rrRate"`
	BaseCostMode         BaseCostMode   `gorm:"type:varchar(20);not null;default:'fixed';column:base_cost_mode" json:"baseCostMode"`
	BaseCostPercentage   float64        `gorm:"type:decimal(5,2);not null;default:0;column:base_cost_percentage" json:"baseCostPercentage"`
	CustomColorSurcharge float64        `gorm:"type:decimal(5,2);not null;default:0;column:custom_color_surcharge" json:"customColorSurcharge"`
	CompletedStatuses    pq.StringArray `gorm:"type:text[];column:completed_statuses" json:"completedStatuses"`
}

// BaseCost is a tenant-configured fixed cost entry. Its free-text Name is
// matched heuristically against configuration kinds by the margin calculator.
type BaseCost struct {
	BaseModel
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"companyId"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Value     float64   `gorm:"type:decimal(15,2);not null;default:0" json:"value"`
}

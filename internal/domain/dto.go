package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportRequest carries the recognized query parameters of every report
// endpoint. CompanyID is the tenant scope and is the only required field.
type ReportRequest struct {
	CompanyID     string `json:"companyId" validate:"required,uuid"`
	StartDate     string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Configuration string `json:"configuration,omitempty"`
	Search        string `json:"search,omitempty"`
	ReportType    string `json:"reportType,omitempty"`
}

// ---------------------------------------------------------------------------
// Sales report
// ---------------------------------------------------------------------------

// ConfigurationSalesStats is the per-configuration slice of the sales report.
type ConfigurationSalesStats struct {
	TotalOrders       int     `json:"totalOrders"`
	CompletedOrders   int     `json:"completedOrders"`
	InProgressOrders  int     `json:"inProgressOrders"`
	Revenue           float64 `json:"revenue"`
	CompletedRevenue  float64 `json:"completedRevenue"`
	InProgressRevenue float64 `json:"inProgressRevenue"`
}

// SalesReportDTO is the sales report payload. Every order is counted as either
// completed or in progress, so totalOrders always equals their sum, and the
// configuration stats partition the full order set (unknown kinds included),
// so their revenues always sum to totalRevenue.
type SalesReportDTO struct {
	TotalOrders           int                                            `json:"totalOrders"`
	CompletedOrders       int                                            `json:"completedOrders"`
	InProgressOrders      int                                            `json:"inProgressOrders"`
	TotalRevenue          float64                                        `json:"totalRevenue"`
	CompletedRevenue      float64                                        `json:"completedRevenue"`
	InProgressRevenue     float64                                        `json:"inProgressRevenue"`
	AverageOrderValue     float64                                        `json:"averageOrderValue"`
	AverageCompletedValue float64                                        `json:"averageCompletedValue"`
	ConfigurationStats    map[ConfigurationKind]*ConfigurationSalesStats `json:"configurationStats"`
	DailyRevenue          map[string]float64                             `json:"dailyRevenue"`
	CompletionRate        float64                                        `json:"completionRate"`
	ConversionRate        float64                                        `json:"conversionRate"`
	InProgressRate        float64                                        `json:"inProgressRate"`
}

// ---------------------------------------------------------------------------
// Configuration analysis
// ---------------------------------------------------------------------------

// NameCount is one entry of a frequency ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DimensionAverages holds mean width/height/length in the units the intake
// form uses; unparsable values are excluded from the mean.
type DimensionAverages struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// ConfigurationReportDTO is the configuration popularity report payload.
type ConfigurationReportDTO struct {
	TotalProjects             int                                     `json:"totalProjects"`
	PopularConfigurations     []NameCount                             `json:"popularConfigurations"`
	PopularGlassColors        []NameCount                             `json:"popularGlassColors"`
	GlassThickness            []NameCount                             `json:"glassThickness"`
	PopularHardwareColors     []NameCount                             `json:"popularHardwareColors"`
	PopularColorCombinations  []NameCount                             `json:"popularColorCombinations"`
	AverageDimensions         DimensionAverages                       `json:"averageDimensions"`
	DimensionsByConfiguration map[ConfigurationKind]DimensionAverages `json:"dimensionsByConfiguration"`
}

// ---------------------------------------------------------------------------
// Financial analysis
// ---------------------------------------------------------------------------

// ConfigurationFinance is the per-configuration slice of the financial report.
type ConfigurationFinance struct {
	Orders         int     `json:"orders"`
	Revenue        float64 `json:"revenue"`
	Cost           float64 `json:"cost"`
	Margin         float64 `json:"margin"`
	MarginPercent  float64 `json:"marginPercent"`
	AverageRevenue float64 `json:"averageRevenue"`
	AverageMargin  float64 `json:"averageMargin"`
}

// FinancialReportDTO is the financial margin report payload.
type FinancialReportDTO struct {
	TotalOrders          int                                         `json:"totalOrders"`
	TotalRevenue         float64                                     `json:"totalRevenue"`
	TotalCost            float64                                     `json:"totalCost"`
	TotalMargin          float64                                     `json:"totalMargin"`
	AverageMarginPercent float64                                     `json:"averageMarginPercent"`
	ByConfiguration      map[ConfigurationKind]*ConfigurationFinance `json:"byConfiguration"`
}

// ---------------------------------------------------------------------------
// Production load
// ---------------------------------------------------------------------------

// ProjectSummary is the compact project representation embedded in report
// payloads that list individual orders.
type ProjectSummary struct {
	ID            uuid.UUID         `json:"id"`
	Customer      string            `json:"customer"`
	Configuration ConfigurationKind `json:"configuration"`
	Price         float64           `json:"price"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// StatusLoad is one workflow stage of the production report. Every tenant
// status is represented even with zero projects; legacy status names that no
// longer resolve to a Status record are collected in a synthetic bucket.
type StatusLoad struct {
	Name       string           `json:"name"`
	Color      string           `json:"color"`
	Count      int              `json:"count"`
	Percentage float64          `json:"percentage"`
	Projects   []ProjectSummary `json:"projects"`
}

// ProductionReportDTO is the production load report payload.
type ProductionReportDTO struct {
	TotalProjects    int                `json:"totalProjects"`
	StatusLoad       []StatusLoad       `json:"statusLoad"`
	AverageDwellDays map[string]float64 `json:"averageDwellDays"`
	WeeklyLoad       map[string]int     `json:"weeklyLoad"`
}

// ---------------------------------------------------------------------------
// Customer analysis
// ---------------------------------------------------------------------------

// CustomerStats aggregates all orders of one customer name.
type CustomerStats struct {
	Name           string                    `json:"name"`
	Orders         int                       `json:"orders"`
	Revenue        float64                   `json:"revenue"`
	Cost           float64                   `json:"cost"`
	Margin         float64                   `json:"margin"`
	Configurations map[ConfigurationKind]int `json:"configurations"`
	Projects       []ProjectSummary          `json:"projects"`
}

// NameRevenue is one entry of a revenue ranking.
type NameRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// CustomerReportDTO is the customer analysis payload. Customers is capped at
// the top 100 by revenue; TotalCustomers counts every distinct name matched.
type CustomerReportDTO struct {
	TotalCustomers             int             `json:"totalCustomers"`
	Customers                  []CustomerStats `json:"customers"`
	TopConfigurationsByRevenue []NameRevenue   `json:"topConfigurationsByRevenue"`
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

// ExportRow is one flat, denormalized project row. Every field is
// human-readable: missing values are substituted with placeholder labels
// rather than left empty.
type ExportRow struct {
	ID             uuid.UUID `json:"id"`
	Customer       string    `json:"customer"`
	Configuration  string    `json:"configuration"`
	Status         string    `json:"status"`
	GlassColor     string    `json:"glassColor"`
	GlassThickness string    `json:"glassThickness"`
	HardwareColor  string    `json:"hardwareColor"`
	Width          string    `json:"width"`
	Height         string    `json:"height"`
	Length         string    `json:"length"`
	CustomColor    string    `json:"customColor"`
	Price          float64   `json:"price"`
	CreatedAt      string    `json:"createdAt"`
}

// ExportDTO is the flat export payload.
type ExportDTO struct {
	ReportType  string      `json:"reportType"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Total       int         `json:"total"`
	Rows        []ExportRow `json:"rows"`
}

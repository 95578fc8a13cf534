package model

import "fmt"

// ShopStatus is the moderation status of a repair shop.
type ShopStatus string

const (
	ShopActive              ShopStatus = "ACTIVE"
	ShopPendingVerification ShopStatus = "PENDING_VERIFICATION"
	ShopSuspended           ShopStatus = "SUSPENDED"
	ShopDeactivated         ShopStatus = "DEACTIVATED"
)

// ShopStatuses lists every shop status.
var ShopStatuses = []ShopStatus{ShopActive, ShopPendingVerification, ShopSuspended, ShopDeactivated}

// ParseShopStatus converts a status name into a ShopStatus.
func ParseShopStatus(s string) (ShopStatus, error) {
	for _, st := range ShopStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown shop status %q", s)
}

// UserStatus is the moderation status of an account.
type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
	UserBlocked   UserStatus = "BLOCKED"
)

// UserStatuses lists every account status.
var UserStatuses = []UserStatus{UserActive, UserSuspended, UserBlocked}

// ParseUserStatus converts a status name into a UserStatus.
func ParseUserStatus(s string) (UserStatus, error) {
	for _, st := range UserStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown user status %q", s)
}

// ShopForm is the body of a shop registration or profile update.
type ShopForm struct {
	ShopName             string   `json:"shopName" validate:"required"`
	Address              string   `json:"address" validate:"required"`
	Description          string   `json:"description,omitempty"`
	OperatingHours       string   `json:"operatingHours,omitempty"`
	Services             []string `json:"services,omitempty"`
	PaymentMethods       []string `json:"paymentMethods,omitempty"`
	AverageRepairTime    string   `json:"averageRepairTime,omitempty"`
	RushServiceAvailable bool     `json:"rushServiceAvailable"`
	DeviceTypes          []string `json:"deviceTypes,omitempty"`
	YearsInBusiness      int      `json:"yearsInBusiness,omitempty" validate:"gte=0"`
	PhotoURLs            []string `json:"photoUrls,omitempty" validate:"dive,url"`
	Latitude             *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude            *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// Shop is a repair shop as returned by the backend. The statistics are
// only filled in on admin listings.
type Shop struct {
	ID                   int64      `json:"id"`
	Owner                *Profile   `json:"owner,omitempty"`
	ShopName             string     `json:"shopName"`
	Address              string     `json:"address,omitempty"`
	Description          string     `json:"description,omitempty"`
	OperatingHours       string     `json:"operatingHours,omitempty"`
	Services             []string   `json:"services,omitempty"`
	PaymentMethods       []string   `json:"paymentMethods,omitempty"`
	AverageRepairTime    string     `json:"averageRepairTime,omitempty"`
	RushServiceAvailable bool       `json:"rushServiceAvailable,omitempty"`
	DeviceTypes          []string   `json:"deviceTypes,omitempty"`
	YearsInBusiness      int        `json:"yearsInBusiness,omitempty"`
	PhotoURLs            []string   `json:"photoUrls,omitempty"`
	Latitude             *float64   `json:"latitude,omitempty"`
	Longitude            *float64   `json:"longitude,omitempty"`
	Status               ShopStatus `json:"status,omitempty"`
	StatusReason         string     `json:"statusReason,omitempty"`
	Verified             bool       `json:"verified"`
	VerificationDate     *Timestamp `json:"verificationDate,omitempty"`
	TotalRepairs         int64      `json:"totalRepairs,omitempty"`
	AverageRating        float64    `json:"averageRating,omitempty"`
	CompletionRate       float64    `json:"completionRate,omitempty"`
}

// Page is one page of a paged backend listing.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
	First         bool  `json:"first"`
	Empty         bool  `json:"empty"`
}

// PageQuery selects a page of admin repair requests. An empty Status
// lists every status.
type PageQuery struct {
	Status RequestStatus
	Page   int
	Size   int
}

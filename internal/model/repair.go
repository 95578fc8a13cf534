package model

import "fmt"

// ProblemCategory classifies a repair request.
type ProblemCategory string

const (
	ProblemScreenDamage    ProblemCategory = "SCREEN_DAMAGE"
	ProblemBatteryIssue    ProblemCategory = "BATTERY_ISSUE"
	ProblemChargingProblem ProblemCategory = "CHARGING_PROBLEM"
	ProblemWaterDamage     ProblemCategory = "WATER_DAMAGE"
	ProblemSoftwareIssue   ProblemCategory = "SOFTWARE_ISSUE"
	ProblemCameraProblem   ProblemCategory = "CAMERA_PROBLEM"
	ProblemSpeakerIssue    ProblemCategory = "SPEAKER_ISSUE"
	ProblemOther           ProblemCategory = "OTHER"
)

// ProblemCategories lists every category in display order.
var ProblemCategories = []ProblemCategory{
	ProblemScreenDamage,
	ProblemBatteryIssue,
	ProblemChargingProblem,
	ProblemWaterDamage,
	ProblemSoftwareIssue,
	ProblemCameraProblem,
	ProblemSpeakerIssue,
	ProblemOther,
}

// RequestStatus is the lifecycle status of a repair request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "PENDING"
	StatusQuoted     RequestStatus = "QUOTED"
	StatusAccepted   RequestStatus = "ACCEPTED"
	StatusInProgress RequestStatus = "IN_PROGRESS"
	StatusCompleted  RequestStatus = "COMPLETED"
	StatusCancelled  RequestStatus = "CANCELLED"
)

// RepairRequestForm is the JSON part of a repair request submission.
type RepairRequestForm struct {
	DeviceBrand        string          `json:"deviceBrand" validate:"required"`
	DeviceModel        string          `json:"deviceModel" validate:"required"`
	IMEINumber         string          `json:"imeiNumber,omitempty" validate:"omitempty,len=15,numeric"`
	ProblemCategory    ProblemCategory `json:"problemCategory" validate:"required,problem_category"`
	ProblemDescription string          `json:"problemDescription" validate:"required"`
}

// RequestStatuses lists every status in lifecycle order.
var RequestStatuses = []RequestStatus{
	StatusPending,
	StatusQuoted,
	StatusAccepted,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ParseRequestStatus converts a status name into a RequestStatus.
func ParseRequestStatus(s string) (RequestStatus, error) {
	for _, st := range RequestStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

// RepairRequest is a repair request as returned by the backend.
type RepairRequest struct {
	ID                 int64           `json:"id"`
	Customer           *Profile        `json:"customer,omitempty"`
	DeviceBrand        string          `json:"deviceBrand"`
	DeviceModel        string          `json:"deviceModel"`
	IMEINumber         string          `json:"imeiNumber,omitempty"`
	ProblemCategory    ProblemCategory `json:"problemCategory"`
	ProblemDescription string          `json:"problemDescription"`
	ImageURLs          []string        `json:"imageUrls,omitempty"`
	Status             RequestStatus   `json:"status"`
	CreatedAt          Timestamp       `json:"createdAt"`
	CompletedAt        *Timestamp      `json:"completedAt,omitempty"`
	Quote              *Quote          `json:"quote,omitempty"`
}

// QuoteForm is a shop's quote on a repair request.
type QuoteForm struct {
	RepairRequestID int64   `json:"repairRequestId" validate:"required,gt=0"`
	EstimatedCost   float64 `json:"estimatedCost" validate:"required,gt=0"`
	Description     string  `json:"description" validate:"required"`
	EstimatedDays   int     `json:"estimatedDays" validate:"required,gt=0"`
}

// Quote is a quote as returned by the backend.
type Quote struct {
	ID            int64          `json:"id"`
	RepairRequest *RepairRequest `json:"repairRequest,omitempty"`
	Shop          *Shop          `json:"shop,omitempty"`
	EstimatedCost float64        `json:"estimatedCost"`
	Description   string         `json:"description"`
	EstimatedDays int            `json:"estimatedDays"`
	Status        string         `json:"status"`
}

// ReviewForm is a customer's review of a completed repair.
type ReviewForm struct {
	RepairRequestID int64  `json:"repairRequestId" validate:"required,gt=0"`
	Rating          int    `json:"rating" validate:"required,min=1,max=5"`
	Comment         string `json:"comment" validate:"required,max=500"`
}

// Review is a review as returned by the backend.
type Review struct {
	ID              int64     `json:"id"`
	RepairRequestID int64     `json:"repairRequestId"`
	ShopID          int64     `json:"shopId"`
	ShopName        string    `json:"shopName,omitempty"`
	CustomerID      int64     `json:"customerId"`
	CustomerName    string    `json:"customerName,omitempty"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       Timestamp `json:"createdAt"`
}

// DashboardStatistics is the admin overview.
type DashboardStatistics struct {
	UserStats struct {
		Total        int64          `json:"total"`
		ByRole       map[Role]int64 `json:"byRole"`
		NewLast7Days int64          `json:"newLast7Days"`
	} `json:"userStats"`
	ShopStats struct {
		Total         int64   `json:"total"`
		Verified      int64   `json:"verified"`
		AverageRating float64 `json:"averageRating"`
	} `json:"shopStats"`
	RequestStats struct {
		Total        int64                   `json:"total"`
		ByStatus     map[RequestStatus]int64 `json:"byStatus"`
		NewLast7Days int64                   `json:"newLast7Days"`
	} `json:"requestStats"`
	RecentActivity struct {
		NewUsers    int64 `json:"newUsers"`
		NewRequests int64 `json:"newRequests"`
		NewShops    int64 `json:"newShops"`
	} `json:"recentActivity"`
}

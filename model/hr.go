// api/model/hr.go
package model

import "time"

// Review lifecycle shared by leave applications and requisitions.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Department struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex"`
	HeadID    *uint     `json:"head_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeaveApplication struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index"`
	Type       string    `json:"type"` // "casual", "sick", "earned", "unpaid"
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Days       int       `json:"days"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"` // "pending", "approved", "rejected"
	ReviewedBy *uint     `json:"reviewed_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AttendanceRecord struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	UserID   uint       `json:"user_id" gorm:"index:idx_attendance_user_date"`
	Date     time.Time  `json:"date" gorm:"index:idx_attendance_user_date"`
	ClockIn  time.Time  `json:"clock_in"`
	ClockOut *time.Time `json:"clock_out,omitempty"`
}

type Document struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Title      string    `json:"title"`
	Category   string    `json:"category"` // "contract", "certificate", "id-proof", "other"
	FileKey    string    `json:"file_key"`
	UploadedBy uint      `json:"uploaded_by" gorm:"index"`
	CreatedAt  time.Time `json:"created_at"`
}

type Payslip struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex:idx_payslip_period"`
	Month       int       `json:"month" gorm:"uniqueIndex:idx_payslip_period"`
	Year        int       `json:"year" gorm:"uniqueIndex:idx_payslip_period"`
	Gross       float64   `json:"gross"`
	Deductions  float64   `json:"deductions"`
	Net         float64   `json:"net"`
	GeneratedBy uint      `json:"generated_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type Requisition struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Number      string    `json:"number" gorm:"uniqueIndex"`
	RequestedBy uint      `json:"requested_by" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"` // "pending", "approved", "rejected"
	ReviewedBy  *uint     `json:"reviewed_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

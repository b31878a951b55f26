package errors

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave application not found")
	ErrInvalidLeaveData     = errors.New("invalid leave application data")
	ErrLeaveAlreadyReviewed = errors.New("leave application already reviewed")

	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrAlreadyClockedIn    = errors.New("already clocked in for today")
	ErrNotClockedIn        = errors.New("no open attendance record for today")
	ErrInvalidAttendance   = errors.New("invalid attendance data")

	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidDocumentData = errors.New("invalid document data")

	ErrPayslipNotFound  = errors.New("payslip not found")
	ErrPayslipConflict  = errors.New("payslip already generated for period")
	ErrInvalidPayslip   = errors.New("invalid payslip data")

	ErrRequisitionNotFound        = errors.New("requisition not found")
	ErrInvalidRequisitionData     = errors.New("invalid requisition data")
	ErrRequisitionAlreadyReviewed = errors.New("requisition already reviewed")
)

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus classifies the lifecycle state of a visit record.
type VisitStatus string

const (
	// VisitStatusCheckedIn indicates the visitor is currently on the premises.
	VisitStatusCheckedIn VisitStatus = "checked-in"
	// VisitStatusCheckedOut indicates the visit has been closed.
	VisitStatusCheckedOut VisitStatus = "checked-out"
)

// String returns the string representation of the VisitStatus.
func (s VisitStatus) String() string {
	return string(s)
}

// IsValid checks if the VisitStatus is a valid value.
func (s VisitStatus) IsValid() bool {
	return s == VisitStatusCheckedIn || s == VisitStatusCheckedOut
}

// VisitPurpose classifies why a visitor is on the premises.
type VisitPurpose string

const (
	PurposeBusinessMeeting VisitPurpose = "business meeting"
	PurposeJobInterview    VisitPurpose = "job interview"
	PurposeConsultation    VisitPurpose = "client consultation"
	PurposeVendorDelivery  VisitPurpose = "vendor delivery"
	PurposeMaintenance     VisitPurpose = "maintenance"
	PurposeITSupport       VisitPurpose = "it support"
	PurposeTraining        VisitPurpose = "training workshop"
	PurposeOfficeTour      VisitPurpose = "office tour"
	PurposeInspection      VisitPurpose = "inspection audit"
	PurposeExecutiveVisit  VisitPurpose = "executive visit"
	PurposeNetworking      VisitPurpose = "networking event"
	PurposeHRAppointment   VisitPurpose = "hr appointment"
	PurposeLegalMeeting    VisitPurpose = "legal compliance meeting"
	PurposeFollowUp        VisitPurpose = "follow up"
)

// VisitPurposes lists every accepted visit purpose, in presentation order.
var VisitPurposes = []VisitPurpose{
	PurposeBusinessMeeting,
	PurposeJobInterview,
	PurposeConsultation,
	PurposeVendorDelivery,
	PurposeMaintenance,
	PurposeITSupport,
	PurposeTraining,
	PurposeOfficeTour,
	PurposeInspection,
	PurposeExecutiveVisit,
	PurposeNetworking,
	PurposeHRAppointment,
	PurposeLegalMeeting,
	PurposeFollowUp,
}

// String returns the string representation of the VisitPurpose.
func (p VisitPurpose) String() string {
	return string(p)
}

// IsValid checks if the VisitPurpose is a valid value.
func (p VisitPurpose) IsValid() bool {
	for _, purpose := range VisitPurposes {
		if p == purpose {
			return true
		}
	}

	return false
}

// VisitRecord represents a single visitor check-in against a host.
// TimeOut stays nil while the status is checked-in; the checkout operation
// sets it exactly once together with the checked-out status.
type VisitRecord struct {
	ID               uuid.UUID    `json:"id"`                 // The Global Unique Identifier (GUID) for the visit.
	HostID           uuid.UUID    `json:"host_id"`            // The ID of the host the visitor came to see.
	CheckinOfficerID uuid.UUID    `json:"checkin_officer_id"` // The ID of the officer who recorded the check-in.
	VisitorFirstName string       `json:"visitor_first_name"` // The visitor's given name.
	VisitorLastName  string       `json:"visitor_last_name"`  // The visitor's family name.
	NationalID       string       `json:"national_id"`        // The visitor's national identity number.
	Phone            string       `json:"phone"`              // The visitor's phone number.
	Purpose          VisitPurpose `json:"purpose"`            // The declared purpose of the visit.
	Status           VisitStatus  `json:"status"`             // checked-in or checked-out.
	VisitDate        time.Time    `json:"visit_date"`         // The calendar day of the visit.
	TimeIn           time.Time    `json:"time_in"`            // The instant the visitor checked in.
	TimeOut          *time.Time   `json:"time_out,omitempty"` // The instant the visitor checked out, nil while on premises.
	CreatedAt        time.Time    `json:"created_at"`         // Timestamp of when the record was created.
	UpdatedAt        time.Time    `json:"updated_at"`         // Timestamp of the last modification.
}

// VisitorFullName returns the visitor's display name.
func (v *VisitRecord) VisitorFullName() string {
	return v.VisitorFirstName + " " + v.VisitorLastName
}

package domain

// OfferingKind distinguishes activities from training sessions.
type OfferingKind string

const (
	OfferingKindActivity OfferingKind = "activity"
	OfferingKindTraining OfferingKind = "training"
)

func (k OfferingKind) String() string { return string(k) }

func (k OfferingKind) IsValid() bool {
	switch k {
	case OfferingKindActivity, OfferingKindTraining:
		return true
	}
	return false
}

// OfferingStatus is the lifecycle status of an offering.
type OfferingStatus string

const (
	OfferingStatusDraft      OfferingStatus = "draft"
	OfferingStatusRecruiting OfferingStatus = "recruiting"
	OfferingStatusOngoing    OfferingStatus = "ongoing"
	OfferingStatusCompleted  OfferingStatus = "completed"
	OfferingStatusCancelled  OfferingStatus = "cancelled"
)

func (s OfferingStatus) String() string { return string(s) }

func (s OfferingStatus) IsValid() bool {
	switch s {
	case OfferingStatusDraft, OfferingStatusRecruiting, OfferingStatusOngoing,
		OfferingStatusCompleted, OfferingStatusCancelled:
		return true
	}
	return false
}

// RegistrationStatus is the approval status of a participation record.
// RegistrationStatusCompleted is only reached by trainings.
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusApproved  RegistrationStatus = "approved"
	RegistrationStatusRejected  RegistrationStatus = "rejected"
	RegistrationStatusCompleted RegistrationStatus = "completed"
)

func (s RegistrationStatus) String() string { return string(s) }

func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved,
		RegistrationStatusRejected, RegistrationStatusCompleted:
		return true
	}
	return false
}

// OccupiesSeat reports whether a record in this status counts against capacity.
func (s RegistrationStatus) OccupiesSeat() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusCompleted:
		return true
	}
	return false
}

// OccupyingStatuses lists the statuses counted by the capacity guard.
var OccupyingStatuses = []RegistrationStatus{
	RegistrationStatusPending,
	RegistrationStatusApproved,
	RegistrationStatusCompleted,
}

// Decision is the outcome an organizer applies to a registration.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) String() string { return string(d) }

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Status returns the registration status the decision produces.
func (d Decision) Status() RegistrationStatus {
	if d == DecisionApproved {
		return RegistrationStatusApproved
	}
	return RegistrationStatusRejected
}

// AttendanceState is the attendance sub-state derived from a record's timestamps.
type AttendanceState string

const (
	AttendanceNotSignedIn AttendanceState = "not_signed_in"
	AttendanceSignedIn    AttendanceState = "signed_in"
	AttendanceSignedOut   AttendanceState = "signed_out"
)

func (s AttendanceState) String() string { return string(s) }

// ScanAction is the action carried by a scan token.
type ScanAction string

const (
	ScanActionSignIn  ScanAction = "signIn"
	ScanActionSignOut ScanAction = "signOut"
)

func (a ScanAction) String() string { return string(a) }

func (a ScanAction) IsValid() bool {
	return a == ScanActionSignIn || a == ScanActionSignOut
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleVolunteer UserRole = "volunteer"
	UserRoleOrganizer UserRole = "organizer"
	UserRoleAdmin     UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleVolunteer, UserRoleOrganizer, UserRoleAdmin:
		return true
	}
	return false
}

// Gender is an optional demographic attribute used in statistics.
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
	GenderOther  Gender = "other"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	}
	return false
}

// NotificationCategory groups notifications in the inbox.
type NotificationCategory string

const (
	NotificationCategoryParticipation NotificationCategory = "participation"
	NotificationCategoryAttendance    NotificationCategory = "attendance"
	NotificationCategorySystem        NotificationCategory = "system"
)

func (c NotificationCategory) String() string { return string(c) }

func (c NotificationCategory) IsValid() bool {
	switch c {
	case NotificationCategoryParticipation, NotificationCategoryAttendance, NotificationCategorySystem:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeOffering      EntityType = "OFFERING"
	EntityTypeParticipation EntityType = "PARTICIPATION"
	EntityTypeUser          EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeOffering, EntityTypeParticipation, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// Package access holds the single role × capability decision table. Every
// authenticated operation names a capability here instead of scattering role
// checks through handlers, so the matrix is testable on its own.
package access

import (
	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type Capability string

const (
	// Seeker capabilities
	CapSeekerProfileView  Capability = "seeker_profile.view"
	CapSeekerProfileEdit  Capability = "seeker_profile.edit"
	CapApplicationSubmit  Capability = "application.submit"
	CapApplicationListOwn Capability = "application.list_own"

	// Employer capabilities
	CapEmployerProfileView   Capability = "employer_profile.view"
	CapEmployerProfileEdit   Capability = "employer_profile.edit"
	CapJobCreate             Capability = "job.create"
	CapJobListOwn            Capability = "job.list_own"
	CapJobUpdate             Capability = "job.update"
	CapJobDelete             Capability = "job.delete"
	CapApplicantList         Capability = "application.list_for_job"
	CapApplicationTransition Capability = "application.transition"

	// Admin capabilities
	CapUserListAll  Capability = "user.list_all"
	CapUserDelete   Capability = "user.delete"
	CapJobListAll   Capability = "job.list_all"
	CapJobDeleteAny Capability = "job.delete_any"
	CapStatsView    Capability = "stats.view"
)

// capabilityRoles is the full decision table. A capability absent from the
// table is denied to everyone. Job search, registration and login are
// unauthenticated and never reach this check.
var capabilityRoles = map[Capability]string{
	CapSeekerProfileView:  domain.RoleSeeker,
	CapSeekerProfileEdit:  domain.RoleSeeker,
	CapApplicationSubmit:  domain.RoleSeeker,
	CapApplicationListOwn: domain.RoleSeeker,

	CapEmployerProfileView:   domain.RoleEmployer,
	CapEmployerProfileEdit:   domain.RoleEmployer,
	CapJobCreate:             domain.RoleEmployer,
	CapJobListOwn:            domain.RoleEmployer,
	CapJobUpdate:             domain.RoleEmployer,
	CapJobDelete:             domain.RoleEmployer,
	CapApplicantList:         domain.RoleEmployer,
	CapApplicationTransition: domain.RoleEmployer,

	CapUserListAll:  domain.RoleAdmin,
	CapUserDelete:   domain.RoleAdmin,
	CapJobListAll:   domain.RoleAdmin,
	CapJobDeleteAny: domain.RoleAdmin,
	CapStatsView:    domain.RoleAdmin,
}

// Check decides whether role may exercise the capability. Deny is an explicit Forbidden
// error, never a silent pass.
func Check(role string, capability Capability) error {
	required, ok := capabilityRoles[capability]
	if !ok || role != required {
		return apperror.Forbidden("Not authorized")
	}
	return nil
}

// RequireOwner verifies the acting user is the owner of the resource. The
// owner reference must come from a row loaded in the current request, not
// from a cache. Admin does not pass through here: admin capabilities bypass
// ownership entirely via the table above.
func RequireOwner(ownerID, actorID string) error {
	if ownerID == "" || ownerID != actorID {
		return apperror.Forbidden("Not authorized")
	}
	return nil
}

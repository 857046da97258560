package access_test

import (
	"testing"

	"go-jobportal-backend/internal/access"
	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCheck(t *testing.T) {
	seekerCaps := []access.Capability{
		access.CapSeekerProfileView,
		access.CapSeekerProfileEdit,
		access.CapApplicationSubmit,
		access.CapApplicationListOwn,
	}
	employerCaps := []access.Capability{
		access.CapEmployerProfileView,
		access.CapEmployerProfileEdit,
		access.CapJobCreate,
		access.CapJobListOwn,
		access.CapJobUpdate,
		access.CapJobDelete,
		access.CapApplicantList,
		access.CapApplicationTransition,
	}
	adminCaps := []access.Capability{
		access.CapUserListAll,
		access.CapUserDelete,
		access.CapJobListAll,
		access.CapJobDeleteAny,
		access.CapStatsView,
	}

	matrix := map[string][]access.Capability{
		domain.RoleSeeker:   seekerCaps,
		domain.RoleEmployer: employerCaps,
		domain.RoleAdmin:    adminCaps,
	}

	t.Run("Should allow each capability only to its role", func(t *testing.T) {
		for owner, caps := range matrix {
			for _, capability := range caps {
				assert.NoError(t, access.Check(owner, capability), "%s should hold %s", owner, capability)

				for other := range matrix {
					if other == owner {
						continue
					}
					assert.Error(t, access.Check(other, capability), "%s should not hold %s", other, capability)
				}
			}
		}
	})

	t.Run("Should deny an empty or unknown role everything", func(t *testing.T) {
		for _, caps := range matrix {
			for _, capability := range caps {
				assert.Error(t, access.Check("", capability))
				assert.Error(t, access.Check("superuser", capability))
			}
		}
	})

	t.Run("Should deny an unknown capability to everyone", func(t *testing.T) {
		for role := range matrix {
			assert.Error(t, access.Check(role, access.Capability("nonsense")))
		}
	})
}

func TestRequireOwner(t *testing.T) {
	t.Run("Should allow the owner", func(t *testing.T) {
		assert.NoError(t, access.RequireOwner("u1", "u1"))
	})

	t.Run("Should deny anyone else", func(t *testing.T) {
		assert.Error(t, access.RequireOwner("u1", "u2"))
	})

	t.Run("Should deny when the owner reference is missing", func(t *testing.T) {
		assert.Error(t, access.RequireOwner("", "u1"))
	})
}

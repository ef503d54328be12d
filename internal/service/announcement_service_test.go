package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alnajat-edu/portal-api/internal/models"
)

func TestCreateAnnouncementValidatesRoles(t *testing.T) {
	svc := NewAnnouncementService(newFixtureStore(), nil, nil)

	_, err := svc.Create(CreateAnnouncementRequest{
		Title: "اجتماع", Content: "نص", AuthorID: "ad-1",
		TargetRoles: []string{"JANITOR"},
	})
	assert.Error(t, err)

	_, err = svc.Create(CreateAnnouncementRequest{
		Title: "اجتماع", Content: "نص", AuthorID: "ad-1",
	})
	assert.Error(t, err, "empty target roles")
}

func TestAnnouncementsAreMostRecentFirst(t *testing.T) {
	svc := NewAnnouncementService(newFixtureStore(), nil, nil)

	first, err := svc.Create(CreateAnnouncementRequest{
		Title: "الأول", Content: "نص", AuthorID: "ad-1",
		TargetRoles: []string{"TEACHER"},
	})
	require.NoError(t, err)
	second, err := svc.Create(CreateAnnouncementRequest{
		Title: "الثاني", Content: "نص", AuthorID: "ad-1",
		TargetRoles: []string{"TEACHER"},
	})
	require.NoError(t, err)

	list := svc.ListForRole(models.RoleTeacher)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListForRoleFiltersByTarget(t *testing.T) {
	svc := NewAnnouncementService(newFixtureStore(), nil, nil)

	_, err := svc.Create(CreateAnnouncementRequest{
		Title: "للمعلمين", Content: "نص", AuthorID: "ad-1",
		TargetRoles: []string{"TEACHER"},
	})
	require.NoError(t, err)
	_, err = svc.Create(CreateAnnouncementRequest{
		Title: "للجميع", Content: "نص", AuthorID: "ad-1",
		TargetRoles: []string{"TEACHER", "STUDENT", "PARENT"},
	})
	require.NoError(t, err)

	assert.Len(t, svc.ListForRole(models.RoleTeacher), 2)
	assert.Len(t, svc.ListForRole(models.RoleStudent), 1)
	assert.Len(t, svc.ListForRole(models.RoleAdmin), 0)
	assert.Len(t, svc.ListForRole(""), 2, "empty role lists everything")
}

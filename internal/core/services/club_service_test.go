package services

import (
	"context"
	"testing"

	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/models"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/adapters/persistence/repositories/memory"
	"github.com/AaravKashyap/ClubCentral-FINAL/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClub(t *testing.T, store *memory.Store, id, name, category string) *models.Club {
	t.Helper()
	club := &models.Club{
		ID:               id,
		Name:             name,
		Description:      "A test club",
		Category:         category,
		AdvisorName:      "Dr. Advisor",
		PresidentName:    "President Person",
		PresidentEmail:   "president@school.edu",
		Email:            name + "@school.edu",
		MeetingFrequency: "Weekly",
		MemberCount:      10,
		YearFounded:      2015,
		Tags: []models.ClubTag{
			{ID: id + "-Testing", ClubID: id, Tag: "Testing"},
		},
	}
	require.NoError(t, store.Clubs.Create(context.Background(), club))
	return club
}

func adminOf(clubID string) *models.User {
	return &models.User{
		ID:         "admin-" + clubID,
		Email:      "admin@school.edu",
		Name:       "Club Admin",
		Role:       "admin",
		IsApproved: true,
		ClubID:     &clubID,
	}
}

func TestClubGetByID(t *testing.T) {
	store := memory.NewStore()
	svc := NewClubService(store.Clubs)
	seedClub(t, store, "1", "Robotics Club", "STEM")

	club, err := svc.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Robotics Club", club.Name)
	assert.Equal(t, []string{"Testing"}, club.Tags)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestClubListFilters(t *testing.T) {
	store := memory.NewStore()
	svc := NewClubService(store.Clubs)
	ctx := context.Background()

	seedClub(t, store, "1", "Robotics Club", "STEM")
	seedClub(t, store, "2", "Chess Club", "Academic")
	seedClub(t, store, "3", "Coding Club", "STEM")

	all, total, err := svc.GetAll(ctx, repositories.ClubFilter{}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, all, 3)

	stem, total, err := svc.GetAll(ctx, repositories.ClubFilter{Category: "STEM"}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, stem, 2)

	// "All" is a pass-through, not a category
	allCat, total, err := svc.GetAll(ctx, repositories.ClubFilter{Category: "All"}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, allCat, 3)

	search, _, err := svc.GetAll(ctx, repositories.ClubFilter{Search: "rob"}, 0, 50)
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "Robotics Club", search[0].Name)
}

func TestClubUpdateOwnership(t *testing.T) {
	store := memory.NewStore()
	svc := NewClubService(store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")

	desc := "Updated description"
	input := &UpdateClubInput{Description: &desc}

	// Admin assigned to the club may edit it
	updated, err := svc.Update(ctx, "1", input, adminOf("1"))
	require.NoError(t, err)
	assert.Equal(t, "Updated description", updated.Description)

	// Admin of a different club may not
	_, err = svc.Update(ctx, "1", input, adminOf("2"))
	assert.ErrorIs(t, err, ErrNotClubOwner)

	// Neither may a student
	student := &models.User{ID: "s1", Email: "s@school.edu", Role: "student", IsApproved: true}
	_, err = svc.Update(ctx, "1", input, student)
	assert.ErrorIs(t, err, ErrNotClubOwner)

	// Super admin bypasses ownership
	super := &models.User{ID: "sa1", Email: "sa@school.edu", Role: "super_admin", IsApproved: true}
	_, err = svc.Update(ctx, "1", input, super)
	assert.NoError(t, err)
}

func TestClubUpdateByPresidentEmail(t *testing.T) {
	store := memory.NewStore()
	svc := NewClubService(store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")

	// No club assignment, but the email matches the club president
	// (case-insensitively)
	president := &models.User{
		ID:         "p1",
		Email:      "President@School.edu",
		Role:       "admin",
		IsApproved: true,
	}

	desc := "President was here"
	_, err := svc.Update(ctx, "1", &UpdateClubInput{Description: &desc}, president)
	assert.NoError(t, err)
}

func TestClubUpdateImageURLNullVsOmitted(t *testing.T) {
	store := memory.NewStore()
	svc := NewClubService(store.Clubs)
	ctx := context.Background()

	club := seedClub(t, store, "1", "Robotics Club", "STEM")
	img := "https://example.com/robot.jpg"
	club.ImageURL = &img
	require.NoError(t, store.Clubs.Save(ctx, club))

	actor := adminOf("1")

	// Omitted image_url leaves the stored value alone
	desc := "new words"
	updated, err := svc.Update(ctx, "1", &UpdateClubInput{Description: &desc}, actor)
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, img, *updated.ImageURL)

	// Explicit null clears it
	updated, err = svc.Update(ctx, "1", &UpdateClubInput{
		ImageURL: patch.String{Defined: true, Value: nil},
	}, actor)
	require.NoError(t, err)
	assert.Nil(t, updated.ImageURL)

	// Explicit value sets it
	newImg := "https://example.com/new.jpg"
	updated, err = svc.Update(ctx, "1", &UpdateClubInput{
		ImageURL: patch.String{Defined: true, Value: &newImg},
	}, actor)
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, newImg, *updated.ImageURL)
}

func TestClubUpdateReplacesEventsAndPortfolios(t *testing.T) {
	store := memory.NewStore()
	svc := NewClubService(store.Clubs)
	ctx := context.Background()
	seedClub(t, store, "1", "Robotics Club", "STEM")
	actor := adminOf("1")

	events := []EventInput{
		{Title: "Kickoff", Description: "Season kickoff", Date: "2026-09-10"},
		{Title: "Regional", Description: "Regional competition", Date: "2026-10-02"},
	}
	portfolios := []string{"https://example.com/build-log"}

	updated, err := svc.Update(ctx, "1", &UpdateClubInput{
		Events:     &events,
		Portfolios: &portfolios,
	}, actor)
	require.NoError(t, err)
	assert.Len(t, updated.Events, 2)
	assert.Equal(t, portfolios, updated.Portfolios)

	// A later update with a shorter list fully supersedes the old one
	fewer := []EventInput{{Title: "Regional", Description: "Regional competition", Date: "2026-10-02"}}
	updated, err = svc.Update(ctx, "1", &UpdateClubInput{Events: &fewer}, actor)
	require.NoError(t, err)
	require.Len(t, updated.Events, 1)
	assert.Equal(t, "Regional", updated.Events[0].Title)
	assert.Equal(t, portfolios, updated.Portfolios, "untouched portfolios survive")
}

func TestClubUpdateSocialMediaPartial(t *testing.T) {
	store := memory.NewStore()
	svc := NewClubService(store.Clubs)
	ctx := context.Background()

	club := seedClub(t, store, "1", "Robotics Club", "STEM")
	insta := "@robots"
	club.InstagramURL = &insta
	require.NoError(t, store.Clubs.Save(ctx, club))

	discord := "discord.gg/robots"
	updated, err := svc.Update(ctx, "1", &UpdateClubInput{
		SocialMedia: &SocialMediaInput{Discord: &discord},
	}, adminOf("1"))
	require.NoError(t, err)

	require.NotNil(t, updated.SocialMedia.Instagram)
	assert.Equal(t, insta, *updated.SocialMedia.Instagram, "unmentioned links keep their values")
	require.NotNil(t, updated.SocialMedia.Discord)
	assert.Equal(t, discord, *updated.SocialMedia.Discord)
}

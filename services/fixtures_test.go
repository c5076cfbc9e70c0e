package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vee-grants/vee-api/database/dbtest"
	"github.com/vee-grants/vee-api/model"
	"github.com/vee-grants/vee-api/utils/auth"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixture struct {
	t           *testing.T
	ctx         context.Context
	db          *gorm.DB
	foundations *FoundationService
	grants      *GrantService
	feedbacks   *GrantFeedbackService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.New(t).GetDB()
	return &fixture{
		t:           t,
		ctx:         context.Background(),
		db:          db,
		foundations: NewFoundationService(db),
		grants:      NewGrantService(db),
		feedbacks:   NewGrantFeedbackService(db),
	}
}

func (f *fixture) user(email string) *model.User {
	f.t.Helper()
	hash, err := auth.HashPasswordWithCost("secret", bcrypt.MinCost)
	require.NoError(f.t, err)

	user := &model.User{Name: email, Email: email, Password: hash}
	require.NoError(f.t, f.db.Create(user).Error)
	return user
}

func (f *fixture) foundation(name string) *model.Foundation {
	f.t.Helper()
	foundation, err := f.foundations.Create(f.ctx, model.FoundationInput{Name: name})
	require.NoError(f.t, err)
	return foundation
}

func (f *fixture) grant(foundation *model.Foundation, name string) *model.Grant {
	f.t.Helper()
	grant, err := f.grants.Create(f.ctx, grantInput(foundation.ID, name))
	require.NoError(f.t, err)
	return grant
}

func (f *fixture) react(user *model.User, grant *model.Grant, reaction model.Reaction) *model.GrantFeedback {
	f.t.Helper()
	feedback, err := f.feedbacks.Create(f.ctx, user.ID, model.GrantFeedbackInput{GrantID: grant.ID, Reaction: reaction})
	require.NoError(f.t, err)
	return feedback
}

func grantInput(foundationID uuid.UUID, name string) model.GrantInput {
	area := "Artificial Intelligence"
	return model.GrantInput{
		FoundationID: foundationID,
		Name:         name,
		Amount:       50000,
		Deadline:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Location:     "San Francisco, CA",
		Area:         &area,
	}
}

func query(page, size int, search string) QueryInput {
	in := QueryInput{Pagination: Pagination{Page: page, Size: size}}
	if search != "" {
		in.Search = &search
	}
	return in
}

func grantIDs(grants []model.Grant) []uuid.UUID {
	ids := make([]uuid.UUID, len(grants))
	for i, g := range grants {
		ids[i] = g.ID
	}
	return ids
}

// assertTouched checks that an update kept created_at and moved updated_at forward.
func assertTouched(t *testing.T, before, after model.Base) {
	t.Helper()
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt), "created_at changed from %v to %v", before.CreatedAt, after.CreatedAt)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updated_at %v is not after %v", after.UpdatedAt, before.UpdatedAt)
}

package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vee-grants/vee-api/model"
)

func TestFoundationCreateAndGet(t *testing.T) {
	f := newFixture(t)
	logo := "https://example.com/logo.png"

	created, err := f.foundations.Create(f.ctx, model.FoundationInput{Name: "Tech Innovation Foundation", LogoURL: &logo})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotNil(t, created.Grants)
	assert.Empty(t, created.Grants)

	got, err := f.foundations.Get(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tech Innovation Foundation", got.Name)
	require.NotNil(t, got.LogoURL)
	assert.Equal(t, logo, *got.LogoURL)
}

func TestFoundationGetUnknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.foundations.Get(f.ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Foundation not found")
}

func TestFoundationNameIsUnique(t *testing.T) {
	f := newFixture(t)
	f.foundation("Acme")
	other := f.foundation("Globex")

	_, err := f.foundations.Create(f.ctx, model.FoundationInput{Name: "Acme"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.foundations.Update(f.ctx, other.ID, model.FoundationInput{Name: "Acme"})
	assert.ErrorIs(t, err, ErrConflict)

	// Keeping its own name is not a conflict.
	updated, err := f.foundations.Update(f.ctx, other.ID, model.FoundationInput{Name: "Globex"})
	require.NoError(t, err)
	assert.Equal(t, "Globex", updated.Name)
}

func TestFoundationUpdateReplacesFields(t *testing.T) {
	f := newFixture(t)
	logo := "https://example.com/old.png"
	created, err := f.foundations.Create(f.ctx, model.FoundationInput{Name: "Acme", LogoURL: &logo})
	require.NoError(t, err)
	f.grant(created, "Seed Grant")
	before, err := f.foundations.Get(f.ctx, created.ID)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	updated, err := f.foundations.Update(f.ctx, created.ID, model.FoundationInput{Name: "Acme Labs"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme Labs", updated.Name)
	assert.Nil(t, updated.LogoURL)
	assert.Len(t, updated.Grants, 1)
	assertTouched(t, before.Base, updated.Base)

	_, err = f.foundations.Update(f.ctx, uuid.New(), model.FoundationInput{Name: "Nobody"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFoundationDeleteCascades(t *testing.T) {
	f := newFixture(t)
	user := f.user("u@example.com")
	foundation := f.foundation("Acme")
	grant := f.grant(foundation, "Seed Grant")
	feedback := f.react(user, grant, model.ReactionLike)

	require.NoError(t, f.foundations.Delete(f.ctx, foundation.ID))

	_, err := f.foundations.Get(f.ctx, foundation.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.grants.Get(f.ctx, grant.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = f.feedbacks.Get(f.ctx, feedback.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, f.foundations.Delete(f.ctx, foundation.ID))
}

func TestFoundationListSearchAndPaging(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"Green Earth", "Blue Ocean", "Evergreen Trust"} {
		f.foundation(name)
	}

	page, err := f.foundations.List(f.ctx, query(1, 10, "GREEN"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	assert.Len(t, page.Items, 2)

	page, err = f.foundations.List(f.ctx, query(2, 2, ""))
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.Pages)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.Len(t, page.Items, 1)

	page, err = f.foundations.List(f.ctx, query(1, 10, "nothing matches"))
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
	assert.Equal(t, 0, page.Pages)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
}

func TestFoundationSearchTreatsWildcardsLiterally(t *testing.T) {
	f := newFixture(t)
	f.foundation("100% Renewable")
	f.foundation("1000 Trees")

	page, err := f.foundations.List(f.ctx, query(1, 10, "100%"))
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "100% Renewable", page.Items[0].Name)
}

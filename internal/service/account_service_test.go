package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/auth"
	"github.com/spec-kit/catalog-admin/internal/domain"
	"github.com/spec-kit/catalog-admin/internal/store"
	"github.com/spec-kit/catalog-admin/pkg/util"
)

func newAccountFixture() (*AccountService, *store.Memory) {
	gateway := store.NewMemory(store.UniqueSlugIndexes(domain.EntityAccount)...)
	return NewAccountService(gateway, bcrypt.MinCost), gateway
}

func TestAccountCreateHashesPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountFixture()
	account, err := svc.Create(context.Background(), &dto.AccountPayload{
		UserName:    "Dragon Slayer",
		Password:    "hunter2",
		Rank:        "Mythic",
		Gold:        5000,
		PearlPoints: 120,
		Thumbnail:   &dto.Thumbnail{Src: "https://cdn.example.com/a.png"},
	})
	require.NoError(t, err)
	require.Equal(t, "dragon-slayer", account.Slug)
	require.NotEqual(t, "hunter2", account.PasswordHash)
	require.NoError(t, auth.ComparePassword(account.PasswordHash, "hunter2"))
	require.Equal(t, "https://cdn.example.com/a.png", account.Thumbnail)
}

func TestAccountCreateValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.AccountPayload{Password: "x"})
	requireDomainError(t, err, util.NameValidationFailed)

	_, err = svc.Create(ctx, &dto.AccountPayload{UserName: "x"})
	requireDomainError(t, err, util.NameValidationFailed)
}

func TestAccountDuplicateSlug(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountFixture()
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.AccountPayload{UserName: "Dragon Slayer", Password: "a"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.AccountPayload{UserName: "dragon slayer", Password: "b"})
	requireDomainError(t, err, util.NameDuplicateSlugAccount)
}

func TestAccountUpdateRehashesOnlyWhenPasswordSupplied(t *testing.T) {
	t.Parallel()

	svc, _ := newAccountFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.AccountPayload{UserName: "Dragon Slayer", Password: "hunter2"})
	require.NoError(t, err)

	kept, err := svc.Update(ctx, created.ID, &dto.AccountPayload{UserName: "Dragon Slayer", Rank: "Epic"})
	require.NoError(t, err)
	require.Equal(t, created.PasswordHash, kept.PasswordHash)
	require.Equal(t, "Epic", kept.Rank)

	changed, err := svc.Update(ctx, created.ID, &dto.AccountPayload{UserName: "Dragon Slayer", Password: "n3w"})
	require.NoError(t, err)
	require.NotEqual(t, created.PasswordHash, changed.PasswordHash)
	require.NoError(t, auth.ComparePassword(changed.PasswordHash, "n3w"))
}

//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/tests/common/builder"
	portsmock "shareit/tests/mock/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type userCommandsFixture struct {
	users    *portsmock.MockUserRepository
	items    *portsmock.MockItemRepository
	reads    *portsmock.MockUserReadStore
	tx       *portsmock.MockTxManager
	commands commands.UserCommands
}

func newUserCommandsFixture(t *testing.T) *userCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &userCommandsFixture{
		users: portsmock.NewMockUserRepository(ctrl),
		items: portsmock.NewMockItemRepository(ctrl),
		reads: portsmock.NewMockUserReadStore(ctrl),
		tx:    portsmock.NewMockTxManager(ctrl),
	}
	f.commands = commands.NewUserCommands(f.users, f.items, f.reads, f.tx)
	return f
}

func (f *userCommandsFixture) expectTx() {
	f.tx.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		})
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func TestUserCommands_Create(t *testing.T) {
	b := builder.NewUserBuilder()
	req := commands.CreateUserRequest{Name: b.Name, Email: b.Email}

	t.Run("creates and returns the stored view", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		view := b.BuildViewQuery()

		f.users.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(nil, notFound("user not found"))
		f.expectTx()
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.reads.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := f.commands.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		_, err := f.commands.Create(context.Background(), commands.CreateUserRequest{Name: "Alice", Email: "garbage"})
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("email already held by someone else", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		other := builder.NewUserBuilder().WithEmail(b.Email)

		f.users.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(other.BuildSnapshot(), nil)

		_, err := f.commands.Create(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrEmailConflict)
	})

	t.Run("unique index race still maps to conflict", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		f.users.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(nil, notFound("user not found"))
		f.expectTx()
		f.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey))

		_, err := f.commands.Create(context.Background(), req)
		require.ErrorIs(t, err, errs.ErrEmailConflict)
	})
}

func TestUserCommands_Update(t *testing.T) {
	b := builder.NewUserBuilder()

	t.Run("patches only supplied fields", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		name := "Renamed"
		view := builder.NewUserBuilder().WithID(b.ID).WithName(name).BuildViewQuery()

		f.users.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.users.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(b.BuildSnapshot(), nil)
		f.expectTx()
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.reads.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil)

		got, err := f.commands.Update(context.Background(), b.ID, commands.UpdateUserRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, got.Name)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		f.users.EXPECT().FindByID(gomock.Any(), b.ID).Return(nil, notFound("user not found"))

		_, err := f.commands.Update(context.Background(), b.ID, commands.UpdateUserRequest{})
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("new email belongs to another user", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		taken := "taken@example.com"
		other := builder.NewUserBuilder().WithEmail(taken)

		f.users.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.users.EXPECT().FindByEmail(gomock.Any(), taken).Return(other.BuildSnapshot(), nil)

		_, err := f.commands.Update(context.Background(), b.ID, commands.UpdateUserRequest{Email: &taken})
		require.ErrorIs(t, err, errs.ErrEmailConflict)
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		f := newUserCommandsFixture(t)
		view := b.BuildViewQuery()

		f.users.EXPECT().FindByID(gomock.Any(), b.ID).Return(b.BuildSnapshot(), nil)
		f.users.EXPECT().FindByEmail(gomock.Any(), b.Email).Return(b.BuildSnapshot(), nil)
		f.expectTx()
		f.users.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.reads.EXPECT().FindByID(gomock.Any(), b.ID).Return(view, nil)

		email := b.Email
		_, err := f.commands.Update(context.Background(), b.ID, commands.UpdateUserRequest{Email: &email})
		require.NoError(t, err)
	})
}

func TestUserCommands_Delete(t *testing.T) {
	userID := uuid.New()

	t.Run("deletes a user without items", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		f.items.EXPECT().CountByOwner(gomock.Any(), userID).Return(int64(0), nil)
		f.expectTx()
		f.users.EXPECT().Delete(gomock.Any(), gomock.Any(), userID).Return(nil)

		require.NoError(t, f.commands.Delete(context.Background(), userID))
	})

	t.Run("refuses while the user owns items", func(t *testing.T) {
		f := newUserCommandsFixture(t)

		f.items.EXPECT().CountByOwner(gomock.Any(), userID).Return(int64(2), nil)

		err := f.commands.Delete(context.Background(), userID)
		require.ErrorIs(t, err, errs.ErrUserHasItems)
	})
}

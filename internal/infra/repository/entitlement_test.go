//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamestore/internal/domain/entitlement"
	"gamestore/internal/infra"
	"gamestore/internal/infra/repository"
	sqlc "gamestore/internal/infra/sqlc/generated"
	"gamestore/internal/pkg/pgconv"
	repositorymock "gamestore/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (mockDBTX) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func TestEntitlementRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockEntitlementWriteQueries, *entitlement.Entitlement, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: entitlement created",
			setupMock: func(mock *repositorymock.MockEntitlementWriteQueries, e *entitlement.Entitlement, db sqlc.DBTX) {
				mock.EXPECT().CreateEntitlement(ctx, db, gomock.Any()).Return(sqlc.Entitlements{
					ID:        e.ID(),
					GameID:    e.GameID(),
					UserID:    e.UserID(),
					CreatedAt: pgconv.TimeToPgtype(e.CreatedAt()),
				}, nil)
			},
		},
		{
			name: "error: duplicate grant maps to duplicate-key kind",
			setupMock: func(mock *repositorymock.MockEntitlementWriteQueries, e *entitlement.Entitlement, db sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateEntitlement(ctx, db, gomock.Any()).Return(sqlc.Entitlements{}, dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: unknown game maps to foreign-key kind",
			setupMock: func(mock *repositorymock.MockEntitlementWriteQueries, e *entitlement.Entitlement, db sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateEntitlement(ctx, db, gomock.Any()).Return(sqlc.Entitlements{}, fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockEntitlementWriteQueries, e *entitlement.Entitlement, db sqlc.DBTX) {
				mock.EXPECT().CreateEntitlement(ctx, db, gomock.Any()).Return(sqlc.Entitlements{}, errors.New("connection reset"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockEntitlementWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewEntitlementRepository(mockQueries, mockDB)

			e := entitlement.New(uuid.New(), uuid.New(), now)
			tc.setupMock(mockQueries, e, mockDB)

			view, err := repo.Create(ctx, e)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, view)
			} else {
				require.NoError(t, err)
				assert.Equal(t, e.GameID(), view.GameID)
				assert.Equal(t, e.UserID(), view.UserID)
			}
		})
	}
}

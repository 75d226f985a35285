package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/KelGut13/backend-crt/internal/friend/model"
	models "github.com/KelGut13/backend-crt/internal/user/model"
	"github.com/KelGut13/backend-crt/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("backend_crt"),
		postgres.WithUsername("test"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connection string: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*models.User)(nil),
		(*model.Friendship)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func truncateAll(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE friendships, users RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func seedUser(t *testing.T, username string) int64 {
	t.Helper()
	u := models.User{Username: username}
	_, err := testDB.NewInsert().Model(&u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u.ID
}

func Test_GetRelation_EitherDirection(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewFriendRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	created, err := repo.CreateRequest(ctx, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.Status)

	fromRequester, err := repo.GetRelation(ctx, alice, bob)
	require.NoError(t, err)
	fromAddressee, err := repo.GetRelation(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, fromRequester.ID, fromAddressee.ID)

	carol := seedUser(t, "carol")
	_, err = repo.GetRelation(ctx, alice, carol)
	assert.ErrorIs(t, err, ErrRelationNotFound)
}

func Test_AcceptLifecycle(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewFriendRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	req, err := repo.CreateRequest(ctx, alice, bob)
	require.NoError(t, err)

	ok, err := repo.AreFriends(ctx, alice, bob)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Accept(ctx, req.ID))

	ok, err = repo.AreFriends(ctx, bob, alice)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, got.Status)
	assert.NotNil(t, got.AcceptedAt)

	require.NoError(t, repo.Delete(ctx, req.ID))
	ok, err = repo.AreFriends(ctx, alice, bob)
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_ListIncomingRequests(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewFriendRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	_, err := repo.CreateRequest(ctx, bob, alice)
	require.NoError(t, err)
	accepted, err := repo.CreateRequest(ctx, carol, alice)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(ctx, accepted.ID))

	rows, err := repo.ListIncomingRequests(ctx, alice)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, bob, rows[0].RequesterID)
	assert.Equal(t, "bob", rows[0].Username)
}

func Test_ListFriends(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewFriendRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	// one accepted in each direction, plus one still pending
	withBob, err := repo.CreateRequest(ctx, alice, bob)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(ctx, withBob.ID))
	withCarol, err := repo.CreateRequest(ctx, carol, alice)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(ctx, withCarol.ID))
	dave := seedUser(t, "dave")
	_, err = repo.CreateRequest(ctx, alice, dave)
	require.NoError(t, err)

	rows, err := repo.ListFriends(ctx, alice)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, "carol", rows[1].Username)
}

func Test_SearchUsers(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewFriendRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bobby := seedUser(t, "bobby")
	bobbie := seedUser(t, "bobbie")
	seedUser(t, "carol")

	accepted, err := repo.CreateRequest(ctx, alice, bobby)
	require.NoError(t, err)
	require.NoError(t, repo.Accept(ctx, accepted.ID))
	_, err = repo.CreateRequest(ctx, bobbie, alice)
	require.NoError(t, err)

	rows, err := repo.SearchUsers(ctx, alice, "bob", 20)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]*string{}
	for _, row := range rows {
		byName[row.Username] = row.Status
	}
	require.NotNil(t, byName["bobby"])
	assert.Equal(t, "accepted", *byName["bobby"])
	require.NotNil(t, byName["bobbie"])
	assert.Equal(t, "received", *byName["bobbie"])

	// the searcher never shows up in their own results
	self, err := repo.SearchUsers(ctx, alice, "alice", 20)
	require.NoError(t, err)
	assert.Empty(t, self)
}

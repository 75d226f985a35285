package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/KelGut13/backend-crt/internal/chat/model"
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
		(*model.Conversation)(nil),
		(*model.Message)(nil),
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
			`TRUNCATE TABLE messages, conversations, users RESTART IDENTITY CASCADE`)
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

func Test_GetOrCreateConversation(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	first, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, first.ID)

	// opening from the other side resolves the same row
	second, err := repo.GetOrCreateConversation(ctx, bob, alice)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	assert.Less(t, first.UserLowID, first.UserHighID)
}

func Test_GetOrCreateConversation_FirstContactRace(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	const openers = 8
	start := make(chan struct{})
	ids := make(chan uuid.UUID, openers)
	errs := make(chan error, openers)

	var wg sync.WaitGroup
	for i := 0; i < openers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
			if err != nil {
				errs <- err
				return
			}
			ids <- conv.ID
		}()
	}
	close(start)
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var canonical uuid.UUID
	for id := range ids {
		if canonical == uuid.Nil {
			canonical = id
			continue
		}
		assert.Equal(t, canonical, id)
	}
	require.NotEqual(t, uuid.Nil, canonical)

	// every opener converged on one row
	count, err := testDB.NewSelect().Model((*model.Conversation)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_GetConversation_NotFound(t *testing.T) {
	truncateAll(t)
	repo := NewChatRepository(testDB, logger.Logger{})

	_, err := repo.GetConversation(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func Test_InsertMessage(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	msg, err := repo.InsertMessage(ctx, conv.ID, alice, "hello bob")
	require.NoError(t, err)

	assert.NotZero(t, msg.ID)
	assert.False(t, msg.SentAt.IsZero())
	assert.Equal(t, "alice", msg.SenderUsername)
	assert.False(t, msg.Deleted)
	assert.False(t, msg.IsRead)
}

func Test_ListVisibleMessages_HiddenAndTombstones(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	m1, err := repo.InsertMessage(ctx, conv.ID, alice, "one")
	require.NoError(t, err)
	m2, err := repo.InsertMessage(ctx, conv.ID, bob, "two")
	require.NoError(t, err)
	m3, err := repo.InsertMessage(ctx, conv.ID, alice, "three")
	require.NoError(t, err)

	require.NoError(t, repo.HideForUser(ctx, m2.ID, alice))
	require.NoError(t, repo.MarkDeletedForEveryone(ctx, m3.ID))

	// alice no longer sees the hidden message, the tombstone stays listed
	forAlice, err := repo.ListVisibleMessages(ctx, conv.ID, alice, 0)
	require.NoError(t, err)
	require.Len(t, forAlice, 2)
	assert.Equal(t, m1.ID, forAlice[0].ID)
	assert.Equal(t, m3.ID, forAlice[1].ID)
	assert.True(t, forAlice[1].Deleted)

	// bob's view is untouched
	forBob, err := repo.ListVisibleMessages(ctx, conv.ID, bob, 0)
	require.NoError(t, err)
	assert.Len(t, forBob, 3)
}

func Test_ListVisibleMessages_Cursor(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	m1, err := repo.InsertMessage(ctx, conv.ID, alice, "one")
	require.NoError(t, err)
	m2, err := repo.InsertMessage(ctx, conv.ID, bob, "two")
	require.NoError(t, err)

	newer, err := repo.ListVisibleMessages(ctx, conv.ID, alice, m1.ID)
	require.NoError(t, err)
	require.Len(t, newer, 1)
	assert.Equal(t, m2.ID, newer[0].ID)

	none, err := repo.ListVisibleMessages(ctx, conv.ID, alice, m2.ID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func Test_HideForUser_Idempotent(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	msg, err := repo.InsertMessage(ctx, conv.ID, alice, "hide me")
	require.NoError(t, err)

	require.NoError(t, repo.HideForUser(ctx, msg.ID, bob))
	require.NoError(t, repo.HideForUser(ctx, msg.ID, bob))

	got, err := repo.GetMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{bob}, got.HiddenFor)
}

func Test_MarkDeletedForEveryone_Idempotent(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	msg, err := repo.InsertMessage(ctx, conv.ID, alice, "oops")
	require.NoError(t, err)

	require.NoError(t, repo.MarkDeletedForEveryone(ctx, msg.ID))
	first, err := repo.GetMessage(ctx, msg.ID)
	require.NoError(t, err)
	require.True(t, first.Deleted)
	require.NotNil(t, first.DeletedAt)

	require.NoError(t, repo.MarkDeletedForEveryone(ctx, msg.ID))
	second, err := repo.GetMessage(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, second.Deleted)
	assert.Equal(t, first.DeletedAt.Unix(), second.DeletedAt.Unix())
}

func Test_MarkConversationRead(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	fromBob, err := repo.InsertMessage(ctx, conv.ID, bob, "for alice")
	require.NoError(t, err)
	fromAlice, err := repo.InsertMessage(ctx, conv.ID, alice, "from alice")
	require.NoError(t, err)

	require.NoError(t, repo.MarkConversationRead(ctx, conv.ID, alice))

	got, err := repo.GetMessage(ctx, fromBob.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	// the reader's own outgoing message is not touched
	own, err := repo.GetMessage(ctx, fromAlice.ID)
	require.NoError(t, err)
	assert.False(t, own.IsRead)
}

func Test_ListDeletedMessageIDs(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	conv, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	m1, err := repo.InsertMessage(ctx, conv.ID, alice, "one")
	require.NoError(t, err)
	m2, err := repo.InsertMessage(ctx, conv.ID, alice, "two")
	require.NoError(t, err)
	require.NoError(t, repo.MarkDeletedForEveryone(ctx, m2.ID))

	deleted, err := repo.ListDeletedMessageIDs(ctx, conv.ID, []int64{m1.ID, m2.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{m2.ID}, deleted)

	none, err := repo.ListDeletedMessageIDs(ctx, conv.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func Test_ListConversationSummaries(t *testing.T) {
	truncateAll(t)
	ctx := context.Background()
	repo := NewChatRepository(testDB, logger.Logger{})

	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	withBob, err := repo.GetOrCreateConversation(ctx, alice, bob)
	require.NoError(t, err)
	withCarol, err := repo.GetOrCreateConversation(ctx, alice, carol)
	require.NoError(t, err)

	_, err = repo.InsertMessage(ctx, withBob.ID, bob, "hi alice")
	require.NoError(t, err)
	_, err = repo.InsertMessage(ctx, withBob.ID, bob, "you there?")
	require.NoError(t, err)
	last, err := repo.InsertMessage(ctx, withCarol.ID, carol, "latest")
	require.NoError(t, err)

	rows, err := repo.ListConversationSummaries(ctx, alice)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// most recent activity first
	assert.Equal(t, withCarol.ID, rows[0].ConversationID)
	assert.Equal(t, carol, rows[0].PeerID)
	assert.Equal(t, "carol", rows[0].PeerUsername)
	assert.Equal(t, "latest", rows[0].LastMessage)
	assert.Equal(t, 1, rows[0].UnreadCount)

	assert.Equal(t, withBob.ID, rows[1].ConversationID)
	assert.Equal(t, "you there?", rows[1].LastMessage)
	assert.Equal(t, 2, rows[1].UnreadCount)

	// a tombstoned last message previews as empty
	require.NoError(t, repo.MarkDeletedForEveryone(ctx, last.ID))
	rows, err = repo.ListConversationSummaries(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "", rows[0].LastMessage)
}

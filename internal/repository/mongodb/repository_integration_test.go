package mongodb

import (
	"context"
	"os"
	"testing"
	"time"

	"socialrobot-be/internal/entity"
	"socialrobot-be/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGODB_URL")
	if uri == "" {
		t.Skip("MONGODB_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("socialrobot_test_" + time.Now().Format("150405"))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	require.NoError(t, EnsureIndexes(ctx, db))
	return db
}

func TestCommunicationRepository_Integration(t *testing.T) {
	db := testDatabase(t)
	repo := NewCommunicationRepository(db)
	ctx := context.Background()
	id := idgen.Generate()

	exists, err := repo.ExistsByPublicId(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &entity.Communication{
		PublicId:  id,
		Config:    entity.DefaultCommunicationConfig(),
		CreatedAt: time.Now().UTC(),
	}))

	exists, err = repo.ExistsByPublicId(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	matched, err := repo.UpdateFields(ctx, id, map[entity.CommunicationField]any{
		entity.FieldCustomPromptSuffix: "Be brief.",
		entity.FieldSubtitlesEnabled:   false,
	})
	require.NoError(t, err)
	assert.True(t, matched)

	got, err := repo.FindByPublicId(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Be brief.", got.Config.CustomPromptSuffix)
	assert.False(t, got.Config.SubtitlesEnabled)

	matched, err = repo.UpdateFields(ctx, "zzzzz-zzzzz", map[entity.CommunicationField]any{
		entity.FieldSubtitlesEnabled: true,
	})
	require.NoError(t, err)
	assert.False(t, matched)

	missing, err := repo.FindByPublicId(ctx, "zzzzz-zzzzz")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = repo.Create(ctx, &entity.Communication{PublicId: id, Config: entity.DefaultCommunicationConfig()})
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

func TestPromptAndChatRepositories_Integration(t *testing.T) {
	db := testDatabase(t)
	ctx := context.Background()
	prompts := NewPromptRepository(db)
	chats := NewChatMessageRepository(db)
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i, input := range []string{"first", "second"} {
		p := &entity.Prompt{
			CommunicationId: "lusab-babad",
			UserInput:       input,
			GeneratedPrompt: "\nUser: " + input + "\nAssistant:",
			LlmModel:        entity.LLMModelLlama3,
			CreatedAt:       base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, prompts.Create(ctx, p))
		assert.NotEmpty(t, p.Id)
	}

	list, err := prompts.FindByCommunicationId(ctx, "lusab-babad")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].UserInput)

	require.NoError(t, chats.Create(ctx, &entity.ChatMessage{
		CommunicationId: "lusab-babad",
		Role:            entity.MessageRoleUser,
		Message:         "hello",
		Timestamp:       base,
	}))
	history, err := chats.FindByCommunicationId(ctx, "lusab-babad")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Message)
}

package commands

import (
	"context"
	"errors"
	"testing"

	"namada_governance_bot/internal/db/models"
	mock_repositories "namada_governance_bot/internal/db/repositories/mocks"
	"namada_governance_bot/internal/queries"
	mock_services "namada_governance_bot/internal/services/mocks"
	"namada_governance_bot/internal/store"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fixture struct {
	node       *mock_services.MockNodeService
	repository *mock_repositories.MockStateRepository
	store      *store.ProposalStore
	queries    *queries.ProposalQueries
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	repository := mock_repositories.NewMockStateRepository(ctrl)
	s := store.New(repository, zap.NewNop().Sugar())

	s.MergeNew([]models.Proposal{{
		ID:         5,
		StartEpoch: 100,
		EndEpoch:   110,
		Type:       "default",
		Content:    models.ProposalContent{Title: "Raise block size"},
	}})

	return &fixture{
		node:       mock_services.NewMockNodeService(ctrl),
		repository: repository,
		store:      s,
		queries:    queries.NewProposalQueries(s, 4090),
	}
}

func privateMessage(chatID int64) *tgbotapi.Message {
	return &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID, Type: "private"}}
}

func texts(t *testing.T, responses []tgbotapi.Chattable) []string {
	t.Helper()

	result := make([]string, 0, len(responses))
	for _, response := range responses {
		message, ok := response.(tgbotapi.MessageConfig)
		require.True(t, ok)
		result = append(result, message.Text)
	}
	return result
}

func TestStartCommand_SubscribesAndListsActive(t *testing.T) {
	f := newFixture(t)
	command := NewStartCommand(f.store, f.node, f.queries, zap.NewNop().Sugar())

	f.repository.EXPECT().Save(gomock.Any()).DoAndReturn(func(state *models.State) error {
		assert.Equal(t, []int64{42}, state.Subscribers)
		return nil
	})
	f.node.EXPECT().GetCurrentEpoch(gomock.Any()).Return(int64(100), nil)

	responses := command.Handle(context.Background(), "", privateMessage(42))

	assert.Equal(t, []string{
		"Successfully subscribed for SE governance proposals",
		"Current epoch: 100; Active proposals:\n\n#5 (ends on start of epoch 111): Raise block size(Active)\n\n",
	}, texts(t, responses))
	assert.Equal(t, []int64{42}, f.store.Subscribers())
}

func TestStartCommand_RepeatedStartDoesNotPersistAgain(t *testing.T) {
	f := newFixture(t)
	command := NewStartCommand(f.store, f.node, f.queries, zap.NewNop().Sugar())
	f.store.AddSubscriber(42)

	f.node.EXPECT().GetCurrentEpoch(gomock.Any()).Return(int64(111), nil)

	responses := command.Handle(context.Background(), "", privateMessage(42))

	assert.Equal(t, []string{
		"Successfully subscribed for SE governance proposals",
		"There are no active proposals in the current (111) epoch",
	}, texts(t, responses))
}

func TestStartCommand_IgnoresGroupChats(t *testing.T) {
	f := newFixture(t)
	command := NewStartCommand(f.store, f.node, f.queries, zap.NewNop().Sugar())

	responses := command.Handle(context.Background(), "", &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: -100, Type: "supergroup"}})

	assert.Empty(t, responses)
	assert.Empty(t, f.store.Subscribers())
}

func TestStartCommand_SubscribesEvenWhenEpochUnavailable(t *testing.T) {
	f := newFixture(t)
	command := NewStartCommand(f.store, f.node, f.queries, zap.NewNop().Sugar())

	f.repository.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))
	f.node.EXPECT().GetCurrentEpoch(gomock.Any()).Return(int64(0), errors.New("rpc down"))

	responses := command.Handle(context.Background(), "", privateMessage(7))

	assert.Equal(t, []string{subscribedMessage, failedToGetEpochMessage}, texts(t, responses))
	assert.Equal(t, []int64{7}, f.store.Subscribers())
}

func TestProposalsCommand(t *testing.T) {
	f := newFixture(t)
	command := NewProposalsCommand(f.node, f.queries, zap.NewNop().Sugar())

	assert.True(t, command.CanHandle("proposals"))
	assert.False(t, command.CanHandle("get"))

	f.node.EXPECT().GetCurrentEpoch(gomock.Any()).Return(int64(105), nil)

	responses := command.Handle(context.Background(), "", privateMessage(1))

	require.Len(t, responses, 1)
	message := responses[0].(tgbotapi.MessageConfig)
	assert.Contains(t, message.Text, "#5 (ends on start of epoch 111)")
	assert.True(t, message.DisableWebPagePreview)
}

func TestProposalsCommand_EpochFailure(t *testing.T) {
	f := newFixture(t)
	command := NewProposalsCommand(f.node, f.queries, zap.NewNop().Sugar())

	f.node.EXPECT().GetCurrentEpoch(gomock.Any()).Return(int64(0), errors.New("rpc down"))

	assert.Equal(t, []string{"Failed to get current epoch"}, texts(t, command.Handle(context.Background(), "", privateMessage(1))))
}

func TestGetProposalCommand(t *testing.T) {
	f := newFixture(t)
	command := NewGetProposalCommand(f.node, f.queries, zap.NewNop().Sugar())

	f.node.EXPECT().GetCurrentEpoch(gomock.Any()).Return(int64(120), nil).Times(2)

	details := texts(t, command.Handle(context.Background(), " 5 ", privateMessage(1)))
	require.Len(t, details, 1)
	assert.Contains(t, details[0], "Proposal #5\nTitle:\nRaise block size\n\n")
	assert.NotContains(t, details[0], "(Active)")

	assert.Equal(t, []string{"Proposal not found"}, texts(t, command.Handle(context.Background(), "999", privateMessage(1))))
}

func TestGetProposalCommand_MissingArgument(t *testing.T) {
	f := newFixture(t)
	command := NewGetProposalCommand(f.node, f.queries, zap.NewNop().Sugar())

	assert.Equal(t, []string{"Failed to parse argument"}, texts(t, command.Handle(context.Background(), "  ", privateMessage(1))))
}

func TestGetProposalCommand_EpochFailure(t *testing.T) {
	f := newFixture(t)
	command := NewGetProposalCommand(f.node, f.queries, zap.NewNop().Sugar())

	f.node.EXPECT().GetCurrentEpoch(gomock.Any()).Return(int64(0), errors.New("rpc down"))

	assert.Equal(t, []string{"Failed to get current epoch"}, texts(t, command.Handle(context.Background(), "5", privateMessage(1))))
}

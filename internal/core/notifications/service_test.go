package notifications

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, n *Notification) (*Notification, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRepository) ListForReceiver(ctx context.Context, receiverID string) ([]NotificationView, error) {
	args := m.Called(ctx, receiverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]NotificationView), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreate_RejectsSelfNotification(t *testing.T) {
	service := NewNotificationService(new(MockRepository))

	_, err := service.Create(context.Background(), CreateNotificationRequest{
		SenderID:   "alice",
		ReceiverID: "alice",
		Title:      "commented on your post",
	})

	assert.ErrorIs(t, err, ErrSelfNotification)
}

func TestCreate_RequiresFields(t *testing.T) {
	service := NewNotificationService(new(MockRepository))

	_, err := service.Create(context.Background(), CreateNotificationRequest{SenderID: "alice"})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestCreate_Success(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *Notification) bool {
		return n.SenderID == "bob" && n.ReceiverID == "alice"
	})).Return(&Notification{ID: "n1", SenderID: "bob", ReceiverID: "alice"}, nil)

	service := NewNotificationService(mockRepo)
	n, err := service.Create(context.Background(), CreateNotificationRequest{
		SenderID:   "bob",
		ReceiverID: "alice",
		Title:      "commented on your post",
	})

	require.NoError(t, err)
	assert.Equal(t, "n1", n.ID)
}

func TestMarkRead_ReceiverOnly(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, "n1").Return(&Notification{ID: "n1", ReceiverID: "alice"}, nil)
	mockRepo.On("MarkRead", mock.Anything, "n1").Return(nil)

	service := NewNotificationService(mockRepo)

	assert.ErrorIs(t, service.MarkRead(context.Background(), "n1", "bob"), ErrNotReceiver)
	assert.NoError(t, service.MarkRead(context.Background(), "n1", "alice"))
}

func TestCommentNotifier_DataPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	var captured *Notification
	mockRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*Notification)
	}).Return(&Notification{ID: "n1"}, nil)

	notifier := NewCommentNotifier(NewNotificationService(mockRepo))
	err := notifier.CommentCreated(context.Background(), "bob", "alice", "p1", "c1")

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "commented on your post", captured.Title)

	var data map[string]string
	require.NoError(t, json.Unmarshal([]byte(captured.Data), &data))
	assert.Equal(t, "p1", data["postId"])
	assert.Equal(t, "c1", data["commentId"])
}

package comments

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"LinkUp/internal/core/users"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, comment *Comment) (*CommentView, error) {
	args := m.Called(ctx, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CommentView), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) ListForPost(ctx context.Context, postID string) ([]CommentView, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CommentView), args.Error(1)
}

// staticOwners maps postID -> ownerID
type staticOwners map[string]string

func (o staticOwners) OwnerOf(ctx context.Context, postID string) (string, error) {
	owner, ok := o[postID]
	if !ok {
		return "", ErrPostNotFound
	}
	return owner, nil
}

// recordingNotifier captures notification calls and signals via done
type recordingNotifier struct {
	mu    sync.Mutex
	calls int
	last  [4]string
	err   error
	done  chan struct{}
}

func (n *recordingNotifier) CommentCreated(ctx context.Context, senderID, receiverID, postID, commentID string) error {
	n.mu.Lock()
	n.calls++
	n.last = [4]string{senderID, receiverID, postID, commentID}
	n.mu.Unlock()
	if n.done != nil {
		close(n.done)
	}
	return n.err
}

// recordingPublisher captures published payloads
type recordingPublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}

func newView(id, postID, userID, text string) *CommentView {
	return &CommentView{
		Comment: Comment{ID: id, PostID: postID, UserID: userID, Text: text, CreatedAt: time.Now()},
		Author:  users.Summary{ID: userID, Name: "bob"},
	}
}

func TestAddComment_NotifiesPostOwner(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(newView("c1", "p1", "bob", "nice"), nil)

	notifier := &recordingNotifier{done: make(chan struct{})}
	service := NewCommentService(mockRepo, staticOwners{"p1": "alice"}, notifier, nil)

	_, err := service.AddComment(context.Background(), AddCommentRequest{PostID: "p1", UserID: "bob", Text: "nice"})
	require.NoError(t, err)

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notification never fired")
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, [4]string{"bob", "alice", "p1", "c1"}, notifier.last)
}

func TestAddComment_NoSelfNotification(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(newView("c1", "p1", "alice", "my own post"), nil)

	notifier := &recordingNotifier{}
	service := NewCommentService(mockRepo, staticOwners{"p1": "alice"}, notifier, nil)

	_, err := service.AddComment(context.Background(), AddCommentRequest{PostID: "p1", UserID: "alice", Text: "my own post"})
	require.NoError(t, err)

	// The notifier runs on a goroutine; give a wrongly fired one time to land
	time.Sleep(50 * time.Millisecond)
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, 0, notifier.calls)
}

func TestAddComment_SucceedsWhenNotifierFails(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(newView("c1", "p1", "bob", "nice"), nil)

	notifier := &recordingNotifier{err: errors.New("notification store down"), done: make(chan struct{})}
	service := NewCommentService(mockRepo, staticOwners{"p1": "alice"}, notifier, nil)

	view, err := service.AddComment(context.Background(), AddCommentRequest{PostID: "p1", UserID: "bob", Text: "nice"})
	require.NoError(t, err)
	assert.Equal(t, "c1", view.ID)

	<-notifier.done
}

func TestAddComment_PublishesToSubscribers(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(newView("c1", "p1", "bob", "nice"), nil)

	publisher := &recordingPublisher{}
	service := NewCommentService(mockRepo, staticOwners{"p1": "alice"}, nil, publisher)

	_, err := service.AddComment(context.Background(), AddCommentRequest{PostID: "p1", UserID: "bob", Text: "nice"})
	require.NoError(t, err)

	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	require.Len(t, publisher.topics, 1)
	assert.Equal(t, "p1", publisher.topics[0])

	var pushed CommentView
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &pushed))
	assert.Equal(t, "c1", pushed.ID)
}

func TestAddComment_UnknownPost(t *testing.T) {
	service := NewCommentService(new(MockRepository), staticOwners{}, nil, nil)

	_, err := service.AddComment(context.Background(), AddCommentRequest{PostID: "ghost", UserID: "bob", Text: "hi"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestAddComment_EmptyText(t *testing.T) {
	service := NewCommentService(new(MockRepository), staticOwners{"p1": "alice"}, nil, nil)

	_, err := service.AddComment(context.Background(), AddCommentRequest{PostID: "p1", UserID: "bob", Text: "   "})
	assert.ErrorIs(t, err, ErrTextEmpty)
}

func TestDeleteComment_Author(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, "c1").Return(&Comment{ID: "c1", PostID: "p1", UserID: "bob"}, nil)
	mockRepo.On("Delete", mock.Anything, "c1").Return(nil)

	service := NewCommentService(mockRepo, staticOwners{"p1": "alice"}, nil, nil)
	assert.NoError(t, service.DeleteComment(context.Background(), "c1", "bob"))
}

func TestDeleteComment_PostOwner(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, "c1").Return(&Comment{ID: "c1", PostID: "p1", UserID: "bob"}, nil)
	mockRepo.On("Delete", mock.Anything, "c1").Return(nil)

	service := NewCommentService(mockRepo, staticOwners{"p1": "alice"}, nil, nil)
	assert.NoError(t, service.DeleteComment(context.Background(), "c1", "alice"))
}

func TestDeleteComment_Stranger(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetByID", mock.Anything, "c1").Return(&Comment{ID: "c1", PostID: "p1", UserID: "bob"}, nil)

	service := NewCommentService(mockRepo, staticOwners{"p1": "alice"}, nil, nil)
	err := service.DeleteComment(context.Background(), "c1", "mallory")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
)

// Ручные моки портов в духе замоканного шлюза из оригинальных тестов:
// каждый метод — подставляемая функция плюс счётчик вызовов.

type mockUserStorage struct {
	createFn   func(ctx context.Context, user *domain.User) error
	findManyFn func(ctx context.Context, limit, offset int) ([]domain.User, error)
	countFn    func(ctx context.Context) (int64, error)
	findByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	updateFn   func(ctx context.Context, id int64, fields map[string]any) (*domain.User, error)
	deleteFn   func(ctx context.Context, id int64) error

	findByIDCalls int
}

func (m *mockUserStorage) Create(ctx context.Context, user *domain.User) error {
	return m.createFn(ctx, user)
}

func (m *mockUserStorage) FindMany(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return m.findManyFn(ctx, limit, offset)
}

func (m *mockUserStorage) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockUserStorage) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	m.findByIDCalls++
	return m.findByIDFn(ctx, id)
}

func (m *mockUserStorage) Update(ctx context.Context, id int64, fields map[string]any) (*domain.User, error) {
	return m.updateFn(ctx, id, fields)
}

func (m *mockUserStorage) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockPostStorage struct {
	createFn          func(ctx context.Context, post *domain.Post, tagIDs []int64) (*domain.Post, error)
	findManyFn        func(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error)
	countFn           func(ctx context.Context, authorID *int64) (int64, error)
	findByIDFn        func(ctx context.Context, id int64) (*domain.Post, error)
	findAllWithTagsFn func(ctx context.Context) ([]domain.Post, error)
	updateFn          func(ctx context.Context, id int64, fields map[string]any, tagIDs []int64) (*domain.Post, error)
	deleteFn          func(ctx context.Context, id int64) error

	findByIDCalls int
}

func (m *mockPostStorage) Create(ctx context.Context, post *domain.Post, tagIDs []int64) (*domain.Post, error) {
	return m.createFn(ctx, post, tagIDs)
}

func (m *mockPostStorage) FindMany(ctx context.Context, authorID *int64, limit, offset int) ([]domain.Post, error) {
	return m.findManyFn(ctx, authorID, limit, offset)
}

func (m *mockPostStorage) Count(ctx context.Context, authorID *int64) (int64, error) {
	return m.countFn(ctx, authorID)
}

func (m *mockPostStorage) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	m.findByIDCalls++
	return m.findByIDFn(ctx, id)
}

func (m *mockPostStorage) FindAllWithTags(ctx context.Context) ([]domain.Post, error) {
	return m.findAllWithTagsFn(ctx)
}

func (m *mockPostStorage) Update(ctx context.Context, id int64, fields map[string]any, tagIDs []int64) (*domain.Post, error) {
	return m.updateFn(ctx, id, fields, tagIDs)
}

func (m *mockPostStorage) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockPublisher struct {
	published []payloads.EntityEventPayload
}

func (m *mockPublisher) PublishEntityEvent(_ context.Context, payload payloads.EntityEventPayload) error {
	m.published = append(m.published, payload)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

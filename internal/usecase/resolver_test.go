package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/GoArmGo/BlogApp/internal/domain"
)

func TestResolveUserID(t *testing.T) {
	users := &mockUserStorage{
		findByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	r := NewEntityResolver(users, &mockPostStorage{})

	id, err := r.ResolveUserID(context.Background(), "7")

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestResolveUserIDNonNumeric(t *testing.T) {
	users := &mockUserStorage{
		findByIDFn: func(_ context.Context, _ int64) (*domain.User, error) {
			return &domain.User{}, nil
		},
	}
	r := NewEntityResolver(users, &mockPostStorage{})

	for _, raw := range []string{"abc", "7.5", "0x1A", "", "  "} {
		_, err := r.ResolveUserID(context.Background(), raw)
		require.Error(t, err, "raw=%q", raw)
		assert.True(t, apperr.IsKind(err, apperr.KindBadRequest), "raw=%q", raw)
		assert.Equal(t, "ID inválido", apperr.As(err).Message)
	}

	// нечисловой ввод отклоняется до обращения к шлюзу
	assert.Zero(t, users.findByIDCalls)
}

func TestResolveUserIDMissing(t *testing.T) {
	users := &mockUserStorage{
		findByIDFn: func(_ context.Context, _ int64) (*domain.User, error) { return nil, nil },
	}
	r := NewEntityResolver(users, &mockPostStorage{})

	_, err := r.ResolveUserID(context.Background(), "42")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "Usuario con ID 42 no encontrado", apperr.As(err).Message)
}

func TestResolveUserIDNegative(t *testing.T) {
	users := &mockUserStorage{
		findByIDFn: func(_ context.Context, _ int64) (*domain.User, error) { return nil, nil },
	}
	r := NewEntityResolver(users, &mockPostStorage{})

	// отрицательное число — синтаксически валидный id, его судьбу решает поиск
	_, err := r.ResolveUserID(context.Background(), "-1")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, 1, users.findByIDCalls)
}

func TestResolvePostID(t *testing.T) {
	posts := &mockPostStorage{
		findByIDFn: func(_ context.Context, id int64) (*domain.Post, error) {
			return &domain.Post{ID: id}, nil
		},
	}
	r := NewEntityResolver(&mockUserStorage{}, posts)

	id, err := r.ResolvePostID(context.Background(), "3")

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestResolvePostIDMissing(t *testing.T) {
	posts := &mockPostStorage{
		findByIDFn: func(_ context.Context, _ int64) (*domain.Post, error) { return nil, nil },
	}
	r := NewEntityResolver(&mockUserStorage{}, posts)

	_, err := r.ResolvePostID(context.Background(), "42")

	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "Post con ID 42 no encontrado", apperr.As(err).Message)
}

package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
)

// EntityResolver превращает сырой path-параметр в проверенный числовой
// идентификатор существующей сущности. Разбор выполняется до любого
// обращения к шлюзу: нечисловой ввод отклоняется без запроса к БД.
type EntityResolver struct {
	users ports.UserStorage
	posts ports.PostStorage
}

func NewEntityResolver(users ports.UserStorage, posts ports.PostStorage) *EntityResolver {
	return &EntityResolver{users: users, posts: posts}
}

// ResolveUserID возвращает id существующего пользователя или ошибку.
func (r *EntityResolver) ResolveUserID(ctx context.Context, raw string) (int64, error) {
	id, err := parseID(raw)
	if err != nil {
		return 0, err
	}

	user, err := r.users.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, apperr.NotFound(fmt.Sprintf("Usuario con ID %d no encontrado", id))
	}
	return id, nil
}

// ResolvePostID возвращает id существующего поста или ошибку.
func (r *EntityResolver) ResolvePostID(ctx context.Context, raw string) (int64, error) {
	id, err := parseID(raw)
	if err != nil {
		return 0, err
	}

	post, err := r.posts.FindByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, apperr.NotFound(fmt.Sprintf("Post con ID %d no encontrado", id))
	}
	return id, nil
}

func parseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperr.BadRequest("ID inválido")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("ID inválido")
	}
	return id, nil
}

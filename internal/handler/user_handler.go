package handler

import (
	"net/http"
	"strconv"

	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/go-chi/chi/v5"
)

func (s *Server) createUser(r *http.Request) (any, error) {
	var d dto.CreateUser
	if err := dto.Decode(r.Body, &d); err != nil {
		return nil, err
	}
	return s.users.Create(r.Context(), d)
}

func (s *Server) listUsers(r *http.Request) (any, error) {
	limit, offset := paginationParams(r)
	return s.users.FindAll(r.Context(), limit, offset)
}

func (s *Server) getUser(r *http.Request) (any, error) {
	id, err := s.resolver.ResolveUserID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return s.users.FindOne(r.Context(), id)
}

func (s *Server) updateUser(r *http.Request) (any, error) {
	id, err := s.resolver.ResolveUserID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}

	var d dto.UpdateUser
	if err := dto.Decode(r.Body, &d); err != nil {
		return nil, err
	}
	return s.users.Update(r.Context(), id, d)
}

func (s *Server) deleteUser(r *http.Request) (any, error) {
	id, err := s.resolver.ResolveUserID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return s.users.Remove(r.Context(), id)
}

// paginationParams читает limit/offset из query; отсутствующие или
// некорректные значения заменяются значениями по умолчанию в сервисе.
func paginationParams(r *http.Request) (int, int) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	return limit, offset
}

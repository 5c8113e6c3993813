package handler

import (
	"net/http"

	"github.com/GoArmGo/BlogApp/internal/dto"
	"github.com/go-chi/chi/v5"
)

func (s *Server) createPost(r *http.Request) (any, error) {
	var d dto.CreatePost
	if err := dto.Decode(r.Body, &d); err != nil {
		return nil, err
	}
	return s.posts.Create(r.Context(), d)
}

// listPosts отдаёт страницу постов; при наличии ?authorId= выборка
// фильтруется по автору, существование которого проверяется резолвером.
func (s *Server) listPosts(r *http.Request) (any, error) {
	limit, offset := paginationParams(r)

	if rawAuthorID := r.URL.Query().Get("authorId"); rawAuthorID != "" {
		authorID, err := s.resolver.ResolveUserID(r.Context(), rawAuthorID)
		if err != nil {
			return nil, err
		}
		return s.posts.FindByAuthor(r.Context(), authorID, limit, offset)
	}

	return s.posts.FindAll(r.Context(), limit, offset)
}

func (s *Server) listPostsWithTags(r *http.Request) (any, error) {
	return s.posts.FindWithTags(r.Context())
}

func (s *Server) getPost(r *http.Request) (any, error) {
	id, err := s.resolver.ResolvePostID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return s.posts.FindOne(r.Context(), id)
}

func (s *Server) updatePost(r *http.Request) (any, error) {
	id, err := s.resolver.ResolvePostID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}

	var d dto.UpdatePost
	if err := dto.Decode(r.Body, &d); err != nil {
		return nil, err
	}
	return s.posts.Update(r.Context(), id, d)
}

func (s *Server) deletePost(r *http.Request) (any, error) {
	id, err := s.resolver.ResolvePostID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, err
	}
	return s.posts.Remove(r.Context(), id)
}

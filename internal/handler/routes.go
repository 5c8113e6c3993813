package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/GoArmGo/BlogApp/internal/auth"
	"github.com/GoArmGo/BlogApp/internal/metrics"
	"github.com/GoArmGo/BlogApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// apiFunc — обработчик маршрута: возвращает результат или ошибку,
// HTTP-статусы и сериализацию берёт на себя обвязка wrap.
type apiFunc func(r *http.Request) (any, error)

// route описывает один маршрут API. Публичность и отключение конверта —
// атрибуты определения маршрута, разрешаемые один раз при регистрации.
type route struct {
	method  string
	pattern string
	handler apiFunc
	direct  http.Handler // готовый обработчик вне конверта wrap; имеет приоритет над handler
	status  int          // статус успешного ответа; 0 означает 200
	public  bool         // маршрут без AuthGate
	raw     bool         // маршрут без Response Normalizer
}

// Server связывает HTTP-маршруты с бизнес-операциями.
type Server struct {
	users    usecase.UserUseCase
	posts    usecase.PostUseCase
	resolver *usecase.EntityResolver
	verifier auth.TokenVerifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewServer создаёт новый экземпляр Server.
func NewServer(
	users usecase.UserUseCase,
	posts usecase.PostUseCase,
	resolver *usecase.EntityResolver,
	verifier auth.TokenVerifier,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		users:    users,
		posts:    posts,
		resolver: resolver,
		verifier: verifier,
		metrics:  m,
		logger:   logger,
	}
}

func (s *Server) routes() []route {
	return []route{
		{method: http.MethodGet, pattern: "/health", handler: s.health, public: true, raw: true},
		{method: http.MethodGet, pattern: "/metrics", direct: s.metrics.Handler(), public: true},

		{method: http.MethodPost, pattern: "/users", handler: s.createUser, status: http.StatusCreated},
		{method: http.MethodGet, pattern: "/users", handler: s.listUsers},
		{method: http.MethodGet, pattern: "/users/{id}", handler: s.getUser},
		{method: http.MethodPatch, pattern: "/users/{id}", handler: s.updateUser},
		{method: http.MethodDelete, pattern: "/users/{id}", handler: s.deleteUser},

		{method: http.MethodPost, pattern: "/posts", handler: s.createPost, status: http.StatusCreated},
		{method: http.MethodGet, pattern: "/posts", handler: s.listPosts},
		{method: http.MethodGet, pattern: "/posts/with-tags", handler: s.listPostsWithTags},
		{method: http.MethodGet, pattern: "/posts/{id}", handler: s.getPost},
		{method: http.MethodPatch, pattern: "/posts/{id}", handler: s.updatePost},
		{method: http.MethodDelete, pattern: "/posts/{id}", handler: s.deletePost},
	}
}

// Router собирает chi-роутер с фиксированным порядком конвейера:
// логгер доступа -> метрики -> таймаут -> (гейт) -> обработчик.
// Паники обработчиков гасит обвязка wrap.
func (s *Server) Router(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(AccessLogger(s.logger))
	r.Use(MetricsMiddleware(s.metrics))
	r.Use(middleware.Timeout(requestTimeout))

	gate := AuthGate(s.verifier, s.logger)
	for _, rt := range s.routes() {
		h := rt.direct
		if h == nil {
			h = s.wrap(rt)
		}
		if !rt.public {
			h = gate(h)
		}
		r.Method(rt.method, rt.pattern, h)
	}

	return r
}

// wrap превращает apiFunc в http.HandlerFunc: ошибка уходит в маппер,
// успешный результат — в нормализатор (кроме raw-маршрутов). Паника
// обработчика тоже становится ответом 500 через маппер.
func (s *Server) wrap(rt route) http.HandlerFunc {
	status := rt.status
	if status == 0 {
		status = http.StatusOK
	}

	return func(w http.ResponseWriter, r *http.Request) {
		responded := false
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("handler panic", "method", r.Method, "path", r.URL.Path, "panic", rec)
				// после начала записи ответа статус уже не изменить
				if !responded {
					writeError(w, apperr.Internal(fmt.Errorf("panic: %v", rec)), s.logger)
				}
			}
		}()

		result, err := rt.handler(r)
		if err != nil {
			responded = true
			writeError(w, err, s.logger)
			return
		}

		responded = true
		if rt.raw {
			respondWithJSON(w, status, result, s.logger)
			return
		}
		respondWithJSON(w, status, normalize(result), s.logger)
	}
}

// health — проверка живости; отдаётся без конверта.
func (s *Server) health(_ *http.Request) (any, error) {
	return map[string]string{"status": "ok"}, nil
}

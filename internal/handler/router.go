package handler

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	"github.com/work-suite-api/internal/auth"
	"github.com/work-suite-api/internal/middleware"
)

// Handlers - набор хендлеров, из которых собирается API
type Handlers struct {
	Task         *TaskHandler
	Project      *ProjectHandler
	Client       *ClientHandler
	Notification *NotificationHandler
	Attendance   *AttendanceHandler
	System       *SystemHandler
	Live         http.Handler
}

// Router настраивает маршруты API
type Router struct {
	mux            *http.ServeMux
	logger         *slog.Logger
	handlers       Handlers
	verifier       auth.Verifier
	allowedOrigins []string
}

// NewRouter создаёт новый роутер. Если verifier равен nil, API работает без авторизации.
func NewRouter(handlers Handlers, verifier auth.Verifier, allowedOrigins []string, logger *slog.Logger) *Router {
	return &Router{
		mux:            http.NewServeMux(),
		logger:         logger,
		handlers:       handlers,
		verifier:       verifier,
		allowedOrigins: allowedOrigins,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	read, manage := r.guards()

	// Проекты
	p := r.handlers.Project
	r.mux.Handle("GET /projects", read(p.List))
	r.mux.Handle("GET /projects/ongoing", read(p.ListOngoing))
	r.mux.Handle("GET /projects/{projectId}", read(p.GetByID))
	r.mux.Handle("POST /projects", manage(p.Create))
	r.mux.Handle("PUT /projects/{projectId}", manage(p.Update))
	r.mux.Handle("DELETE /projects/{projectId}", manage(p.Delete))

	// Задачи
	t := r.handlers.Task
	r.mux.Handle("GET /tasks", read(t.List))
	r.mux.Handle("GET /tasks/ongoing", read(t.ListOngoing))
	r.mux.Handle("GET /tasks/list", read(t.ListEmployees))
	r.mux.Handle("GET /tasks/employee/{employeeId}", read(t.ListByEmployee))
	r.mux.Handle("GET /tasks/{taskId}", read(t.GetByID))
	r.mux.Handle("POST /tasks", manage(t.Create))
	r.mux.Handle("PUT /tasks/{taskId}", manage(t.Update))
	r.mux.Handle("DELETE /tasks/{taskId}", manage(t.Delete))
	r.mux.Handle("PATCH /tasks/{taskId}/reassign", manage(t.Reassign))
	// статус может менять и исполнитель
	r.mux.Handle("PUT /taskstatus/{taskId}", read(t.UpdateStatus))

	// Заказчики
	c := r.handlers.Client
	r.mux.Handle("GET /clients", read(c.List))
	r.mux.Handle("POST /clients", manage(c.Create))
	r.mux.Handle("DELETE /clients/{clientId}", manage(c.Delete))

	n := r.handlers.Notification
	r.mux.Handle("GET /notifications", read(n.List))
	r.mux.Handle("POST /notifications", manage(n.Create))

	a := r.handlers.Attendance
	r.mux.Handle("GET /attendance", read(a.Today))
	r.mux.Handle("POST /attendance/clock-in", read(a.ClockIn))
	r.mux.Handle("POST /attendance/clock-out", read(a.ClockOut))

	r.mux.HandleFunc("GET /verify", r.handlers.System.Verify)

	if r.handlers.Live != nil {
		if r.verifier != nil {
			r.mux.Handle("GET /ws", middleware.RequireAuth(r.handlers.Live))
		} else {
			r.mux.Handle("GET /ws", r.handlers.Live)
		}
	}

	// Токен проверяется для всех маршрутов, кроме /health
	var api http.Handler = r.mux
	if r.verifier != nil {
		api = middleware.Authenticate(r.verifier)(api)
	}
	root := http.NewServeMux()
	root.HandleFunc("GET /health", r.handlers.System.Health)
	root.Handle("/", api)

	// Применяем middleware
	handler := middleware.ContentType(root)
	handler = cors.New(cors.Options{
		AllowedOrigins:   r.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(handler)
	handler = middleware.Logger(r.logger)(handler)
	handler = middleware.Recoverer(r.logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

// guards возвращает обёртки для чтения и для изменений.
// Без verifier обе пропускают всё.
func (r *Router) guards() (read, manage func(http.HandlerFunc) http.Handler) {
	if r.verifier == nil {
		open := func(h http.HandlerFunc) http.Handler { return h }
		return open, open
	}

	privileged := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	read = func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }
	manage = func(h http.HandlerFunc) http.Handler { return privileged(h) }
	return read, manage
}

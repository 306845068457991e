package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"foodiexpress/internal/contact"
	"foodiexpress/internal/menu"
	ordercontroller "foodiexpress/internal/order/controller"
	"foodiexpress/internal/user"
)

func NewRouter(
	menuCtrl *menu.Controller,
	orderCtrl *ordercontroller.Controller,
	userCtrl *user.Controller,
	contactCtrl *contact.Controller,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(requestLogger(logger))
	r.Use(cors)

	r.Route("/api", func(r chi.Router) {
		r.Route("/menuitems", func(r chi.Router) {
			r.Get("/", menuCtrl.List)
			r.Get("/popular", menuCtrl.ListPopular)
			r.Get("/search", menuCtrl.Search)
			r.Get("/category/{category}", menuCtrl.ListByCategory)
			r.Get("/{id}", menuCtrl.GetByID)
			r.Post("/", menuCtrl.Create)
			r.Put("/{id}", menuCtrl.Update)
			r.Delete("/{id}", menuCtrl.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderCtrl.GetAll)
			r.Get("/number/{orderNumber}", orderCtrl.GetByOrderNumber)
			r.Get("/status/{status}", orderCtrl.GetByStatus)
			r.Get("/{id}", orderCtrl.GetByID)
			r.Post("/", orderCtrl.Create)
			r.Put("/{id}/status", orderCtrl.UpdateStatus)
			r.Delete("/{id}", orderCtrl.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/login", userCtrl.Login)
			r.Get("/", userCtrl.GetAll)
			r.Get("/email/{email}", userCtrl.GetByEmail)
			r.Get("/{id}", userCtrl.GetByID)
			r.Get("/{id}/orders", userCtrl.GetOrders)
			r.Put("/{id}", userCtrl.Update)
			r.Delete("/{id}", userCtrl.Delete)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", contactCtrl.GetAll)
			r.Get("/unread", contactCtrl.GetUnread)
			r.Get("/{id}", contactCtrl.GetByID)
			r.Post("/", contactCtrl.Create)
			r.Put("/{id}/read", contactCtrl.MarkRead)
			r.Put("/{id}/resolve", contactCtrl.MarkResolved)
			r.Delete("/{id}", contactCtrl.Delete)
		})
	})

	// Storefront.
	r.Handle("/*", http.FileServer(http.Dir("web/static")))

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

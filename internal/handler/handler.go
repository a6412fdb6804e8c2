package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/config"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/domain"
	"github.com/rosterhub-dev/workforce-scheduler/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		// 员工侧
		r.Group(func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleEmployee}))
			r.Use(h.currentEmployee)
			r.Post("/availability", h.SubmitAvailability)
			r.Post("/add-request", h.AddRequest)
			r.Get("/shifts", h.ListMyShifts)
			r.Get("/notifications/employee", h.ListMyNotifications)
		})

		// 经理侧
		r.Group(func(r chi.Router) {
			r.Use(h.RequiredRole([]domain.Role{domain.RoleManager}))
			r.Use(h.currentManager)
			r.Get("/availability", h.ListAvailability)
			r.Post("/schedule", h.AssignSchedule)
			r.Post("/shift", h.CreateShift)
			r.Put("/shift", h.UpdateShift)
			r.Delete("/shift", h.DeleteShift)
			r.Get("/shifts/department", h.ListDepartmentShifts)
			r.Patch("/authorize-request/{id}", h.AuthorizeRequest)
			r.Get("/notifications/manager", h.ListMyNotifications)
		})

		// 两种角色都可以标记自己的通知为已读
		r.Patch("/notifications/{id}/read", h.MarkNotificationRead)
	})
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/syahrillhaiqal/drinkify/internal/service"
)

type Server struct {
	mx           *chi.Mux
	userService  service.UserServiceI
	goalService  service.GoalServiceI
	waterService service.WaterServiceI
	statsService service.StatsServiceI
	jwtService   JWTServiceI
	pictures     PictureStoreI
}

type ServicesList struct {
	UserService  service.UserServiceI
	GoalService  service.GoalServiceI
	WaterService service.WaterServiceI
	StatsService service.StatsServiceI
	JwtService   JWTServiceI
	Pictures     PictureStoreI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		goalService:  servicesOptions.GoalService,
		waterService: servicesOptions.WaterService,
		statsService: servicesOptions.StatsService,
		jwtService:   servicesOptions.JwtService,
		pictures:     servicesOptions.Pictures,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/goals/today", s.TodayGoal)
			r.Put("/goals/today", s.SetTodayTarget)
			r.Post("/water", s.AddWater)
			r.Get("/water/logs", s.GetWaterLogs)
			r.Get("/water/types", s.GetWaterTypes)
			r.Delete("/water/today", s.ResetToday)
			r.Get("/stats/calendar", s.GetCalendar)
			r.Get("/stats/chart", s.GetChart)
			r.Get("/profile", s.GetProfile)
			r.Patch("/profile", s.UpdateProfile)
			r.Post("/profile/picture", s.UploadProfilePicture)
		})
	})
	return http.ListenAndServe(address, s.mx)
}

package http

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the content endpoints under /eduPortal.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/eduPortal", func(r chi.Router) {
		r.Route("/research", func(r chi.Router) {
			r.Get("/achievements", h.ResearchOverview)
			r.Post("/papersList", h.PapersList)
			r.Get("/papers/{id}", h.PaperDetail)
			r.Post("/patentsList", h.PatentsList)
			r.Get("/patents/{id}", h.PatentDetail)
			r.Post("/booksList", h.BooksList)
			r.Get("/books/{id}", h.BookDetail)
		})

		r.Post("/notices/list", h.NoticesList)
		r.Get("/notices/{id}", h.NoticeDetail)

		r.Post("/dynamic/list", h.DynamicsList)
		r.Get("/dynamic/{id}", h.DynamicDetail)

		r.Post("/instruments/list", h.InstrumentsList)
		r.Get("/instruments/{id}", h.InstrumentDetail)

		r.Get("/recruitment", h.Recruitment)
		r.Get("/recruitment/{type}", h.RecruitmentByType)

		r.Post("/tools/list", h.ToolsList)

		r.Get("/dictTypes", h.DictTypes)
		r.Get("/dict/{dictType}", h.DictByType)

		r.Get("/getUserList", h.UserList)
		r.Get("/getUserDetail/{userId}", h.UserDetail)

		r.Get("/instituteProfile", h.InstituteProfile)
		r.Get("/labEnvironmentProfile", h.LabEnvironmentProfile)
		r.Post("/profile", h.ProfileByType)
	})
}

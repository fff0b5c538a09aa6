package server

import (
	"net/http"

	"awei/internal/config"
	"awei/internal/middleware"
	"awei/internal/model"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// authPolicy is the declarative per-route access level. Every route
// states its policy in the table below; nothing decides auth ad hoc
// inside a handler.
type authPolicy int

const (
	authPublic authPolicy = iota
	authSession
	authAdmin
)

type route struct {
	method  string
	path    string
	policy  authPolicy
	handler gin.HandlerFunc
}

func routes(h *Handlers) []route {
	return []route{
		// session
		{http.MethodPost, "/jwt", authPublic, h.Auth.IssueToken},
		{http.MethodGet, "/logout", authPublic, h.Auth.Logout},
		// users
		{http.MethodPost, "/users", authPublic, h.User.Create},
		{http.MethodGet, "/user/:email", authPublic, h.User.GetByEmail},
		{http.MethodGet, "/verified/employees", authPublic, h.User.ListVerified},
		{http.MethodGet, "/employees", authPublic, h.User.ListEmployees},
		{http.MethodPatch, "/admin/update/:email", authPublic, h.User.Update},
		{http.MethodPatch, "/employees/update/:email", authPublic, h.User.Update},
		{http.MethodPatch, "/employees/fire/:id", authAdmin, h.User.Fire},
		{http.MethodPatch, "/employees/adjust-salary/:id", authAdmin, h.User.AdjustSalary},
		{http.MethodGet, "/employee/:id/salary", authSession, h.User.Salary},
		// work sheets
		{http.MethodPost, "/workSheets", authPublic, h.WorkSheet.Add},
		{http.MethodGet, "/workSheet/:email", authPublic, h.WorkSheet.ListByEmail},
		{http.MethodGet, "/progress", authPublic, h.WorkSheet.Progress},
		// payments
		{http.MethodPost, "/create-payment-intent", authSession, h.Payment.CreateIntent},
		{http.MethodGet, "/payments", authSession, h.Payment.List},
		{http.MethodPost, "/payments", authSession, h.Payment.Create},
		{http.MethodGet, "/payments/:id", authPublic, h.Payment.GetByID},
		{http.MethodGet, "/details/:slug", authPublic, h.Payment.GetBySlug},
		{http.MethodGet, "/employee-list", authPublic, h.Payment.ListPage},
		// messages
		{http.MethodPost, "/messageA", authPublic, h.Message.Create},
		{http.MethodGet, "/messageA", authPublic, h.Message.List},
	}
}

func setupRouter(cfg *config.Config, h *Handlers, s *Services) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	session := middleware.RequireSession(s.Token)
	admin := middleware.RequireRole(s.Token, model.RoleAdmin)

	for _, rt := range routes(h) {
		switch rt.policy {
		case authSession:
			r.Handle(rt.method, rt.path, session, rt.handler)
		case authAdmin:
			r.Handle(rt.method, rt.path, admin, rt.handler)
		default:
			r.Handle(rt.method, rt.path, rt.handler)
		}
	}

	// liveness
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server is running")
	})

	return r
}

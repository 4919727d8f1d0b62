package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)

	CreateProfile(c *ginext.Context)
	ListProfiles(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	DeleteProfile(c *ginext.Context)

	PurchaseTicket(c *ginext.Context)
	ListTickets(c *ginext.Context)
	GetTicket(c *ginext.Context)
	CancelTicket(c *ginext.Context)

	ScanTicket(c *ginext.Context)

	CreateTournament(c *ginext.Context)
	ListTournaments(c *ginext.Context)
	GetTournament(c *ginext.Context)
	UpdateTournament(c *ginext.Context)
	DeleteTournament(c *ginext.Context)

	GenerateBracket(c *ginext.Context)
	GetBracket(c *ginext.Context)
	GetBracketByID(c *ginext.Context)
	ListBrackets(c *ginext.Context)
	UpdateBracket(c *ginext.Context)

	ListAccounts(c *ginext.Context)
	GetAccount(c *ginext.Context)
	UpdateAccount(c *ginext.Context)
	DeleteAccount(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Tournaments are browsable without an account.
		api.GET("/tournaments", h.ListTournaments)
		api.GET("/tournaments/:id", h.GetTournament)
		api.GET("/tournaments/:id/bracket", h.GetBracket)

		authed := api.Group("", auth)
		{
			authed.POST("/profiles", h.CreateProfile)
			authed.GET("/profiles", h.ListProfiles)
			authed.GET("/profiles/:profileId", h.GetProfile)
			authed.PUT("/profiles/:profileId", h.UpdateProfile)
			authed.DELETE("/profiles/:profileId", h.DeleteProfile)

			authed.POST("/profiles/:profileId/tickets", h.PurchaseTicket)
			authed.GET("/profiles/:profileId/tickets", h.ListTickets)
			authed.GET("/profiles/:profileId/tickets/:ticketId", h.GetTicket)
			authed.DELETE("/profiles/:profileId/tickets/:ticketId", h.CancelTicket)
		}

		adm := api.Group("/admin", auth, admin)
		{
			adm.POST("/checkin/scan", h.ScanTicket)

			adm.POST("/tournaments", h.CreateTournament)
			adm.PUT("/tournaments/:id", h.UpdateTournament)
			adm.DELETE("/tournaments/:id", h.DeleteTournament)

			adm.POST("/tournaments/:id/bracket", h.GenerateBracket)
			adm.GET("/brackets", h.ListBrackets)
			adm.GET("/brackets/:bracketId", h.GetBracketByID)
			adm.PUT("/brackets/:bracketId", h.UpdateBracket)

			adm.GET("/users", h.ListAccounts)
			adm.GET("/users/:id", h.GetAccount)
			adm.PUT("/users/:id", h.UpdateAccount)
			adm.DELETE("/users/:id", h.DeleteAccount)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

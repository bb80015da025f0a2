package core

import (
	"log"

	"core/cron"
	"core/handlers"
	"core/services"

	authMiddleware "auth/middleware"
	authModels "auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler      *handlers.PlayerHandler
	PlayerService      *services.PlayerService
	TeamHandler        *handlers.TeamHandler
	TeamService        *services.TeamService
	MatchHandler       *handlers.MatchHandler
	MatchService       *services.MatchService
	StatusSweepService *services.StatusSweepService
	Scheduler          *cron.Scheduler
	db                 *gorm.DB
	jwtSecret          string
}

func NewModule(db *gorm.DB, jwtSecret string) *Module {
	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	teamService := services.NewTeamService(db, playerService)
	teamHandler := handlers.NewTeamHandler(teamService)

	matchService := services.NewMatchService(db)
	matchHandler := handlers.NewMatchHandler(matchService)

	statusSweepService := services.NewStatusSweepService(db)
	scheduler := cron.NewScheduler(statusSweepService)

	return &Module{
		PlayerHandler:      playerHandler,
		PlayerService:      playerService,
		TeamHandler:        teamHandler,
		TeamService:        teamService,
		MatchHandler:       matchHandler,
		MatchService:       matchService,
		StatusSweepService: statusSweepService,
		Scheduler:          scheduler,
		db:                 db,
		jwtSecret:          jwtSecret,
	}
}

// Audit event names for the core routes, mirrored on the auth side by
// authModels' event constants.
const (
	eventAddPlayer        = "add player"
	eventGetPlayers       = "get players"
	eventGetPlayerDetails = "get player details"
	eventGetPlayersSearch = "get players search"
	eventCreateTeam       = "create team"
	eventGetTeams         = "get teams"
	eventGetTeam          = "get team"
	eventUpdateTeam       = "update team"
	eventSearchTeams      = "search teams"
	eventGetTeamMembers   = "get team members"
	eventCreateMatch      = "create match"
	eventFetchMatches     = "fetch matches"
)

func (m *Module) SetupRoutes(r *gin.Engine) {
	jwt := authMiddleware.JWTMiddleware(m.db, m.jwtSecret)
	userOrAdmin := authMiddleware.RequireAnyRole(authModels.RoleUser, authModels.RoleAdmin)
	audit := func(eventType string) gin.HandlerFunc {
		return authMiddleware.Audit(m.db, eventType)
	}

	players := r.Group("/v1/api/player")
	{
		players.POST("/addPlayer", jwt, userOrAdmin, audit(eventAddPlayer), m.PlayerHandler.AddPlayer)
		players.GET("/getAllPlayers", jwt, userOrAdmin, audit(eventGetPlayers), m.PlayerHandler.GetAllPlayers)
		players.GET("/getPlayerDetails", audit(eventGetPlayerDetails), m.PlayerHandler.GetPlayerDetails)
		players.GET("/getPlayerDetailsUserName", audit(eventGetPlayerDetails), m.PlayerHandler.GetPlayerDetailsByUserName)
		players.GET("/searchPlayers", audit(eventGetPlayersSearch), m.PlayerHandler.SearchPlayers)
	}

	teams := r.Group("/v1/api/team")
	{
		teams.POST("/createTeam", jwt, userOrAdmin, audit(eventCreateTeam), m.TeamHandler.CreateTeam)
		teams.GET("/getAllTeams", audit(eventGetTeams), m.TeamHandler.GetAllTeams)
		teams.GET("/getTeam", audit(eventGetTeam), m.TeamHandler.GetTeam)
		teams.PUT("/updateTeam/:teamNameOld", jwt, userOrAdmin, audit(eventUpdateTeam), m.TeamHandler.UpdateTeam)
		teams.GET("/searchTeams", audit(eventSearchTeams), m.TeamHandler.SearchTeams)
		teams.GET("/getMembers/:teamName", audit(eventGetTeamMembers), m.TeamHandler.GetMembers)
	}

	matches := r.Group("/v1/api/match")
	{
		matches.POST("/createMatch", jwt, userOrAdmin, audit(eventCreateMatch), m.MatchHandler.CreateMatch)
		matches.GET("/fetchMatches/:matchType", jwt, userOrAdmin, audit(eventFetchMatches), m.MatchHandler.FetchMatches)
	}
}

// StartScheduler starts the cron scheduler for the match status sweep
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}

// RunStatusSweepNow manually triggers the status sweep (useful for testing)
func (m *Module) RunStatusSweepNow() {
	log.Println("Manually triggering status sweep...")
	m.Scheduler.RunNow()
}

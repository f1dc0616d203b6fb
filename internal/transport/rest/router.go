package rest

import (
	"net/http"
	"time"

	"herald/internal/config"
	"herald/internal/core/event"
	"herald/internal/logger"
	"herald/internal/transport/rest/middleware"
	"herald/internal/transport/ws"
)

type RouterDeps struct {
	Bus *event.Bus
	Log logger.Logger

	WsWeb   *ws.WebHandler
	Culture *CultureHandler
	Message *MessageHandler
	Report  *ReportHandler
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.Recover(deps.Bus, deps.Log))
	globalMw.Use(middleware.CORS(cfg))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /ws/web", deps.WsWeb.Serve)

	mux.HandleFunc("GET /culture", deps.Culture.Show)
	mux.HandleFunc("PUT /culture", deps.Culture.Update)

	mux.HandleFunc("POST /messages", deps.Message.Store)

	mux.HandleFunc("GET /errors", deps.Report.Index)

	return globalMw.Then(mux)
}

func NewServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

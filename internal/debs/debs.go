package deps

import (
	"log"

	"github.com/AayushiWani/TY-Miniproject/config"
	"github.com/AayushiWani/TY-Miniproject/internal/db"
	"github.com/AayushiWani/TY-Miniproject/util/websockets"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependencies struct {
	DB        *db.DB
	WebSocket *websockets.WebSocketManager
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.Dsn)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	websocket := websockets.NewWebSocketManager()

	if cfg.RedisURL != "" {
		relay, err := websockets.NewRedisRelay(cfg.RedisURL, websocket)
		if err != nil {
			log.Panicln("failed to connect to redis", "error", err)
		}
		websocket.SetRelay(relay)
	}

	deps := Dependencies{
		DB:        database,
		WebSocket: websocket,
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}

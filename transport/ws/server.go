// Package ws serves games over websockets. Every connection gets its own engine stepped by a
// runner; the client sends commands and receives a frame after every change.
package ws

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/runner"
	"go.uber.org/zap"
)

type Server struct {
	settings config.Settings
	interval time.Duration
	log      *zap.Logger

	upgrader websocket.Upgrader
}

func NewServer(settings config.Settings, interval time.Duration, logger *zap.Logger) *Server {
	return &Server{
		settings: settings,
		interval: interval,
		log:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) newRunner(log *zap.Logger) (*runner.Runner, error) {
	settings := s.settings
	if !settings.SeedSet {
		settings.Field.Seed = rand.Uint64()
	}

	engine, err := settings.NewEngine(field.WithLogger(log.Named("field")))
	if err != nil {
		return nil, err
	}
	return runner.New(engine, runner.WithLogger(log)), nil
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		log := s.log.With(zap.String("remote", r.RemoteAddr))
		run, err := s.newRunner(log)
		if err != nil {
			log.Error("create engine", zap.Error(err))
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "engine"), time.Now().Add(time.Second))
			return
		}
		log.Info("session started")

		out := make(chan []byte, 64)
		push := func(f runner.Frame) {
			b, err := json.Marshal(frameMsg(f))
			if err != nil {
				return
			}
			select {
			case out <- b:
			default:
				log.Warn("dropping frame, client too slow", zap.Int64("step", f.Step))
			}
		}

		engine := run.Engine()
		push(runner.Frame{Grid: engine.Snapshot(), GameOver: engine.GameOver()})
		run.OnFrame(func(f runner.Frame) {
			if changed(f) {
				push(f)
			}
		})

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		go run.Run(ctx, s.interval)

		// Writer goroutine.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-out:
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			var m ClientMsg
			if err := json.Unmarshal(msg, &m); err != nil {
				continue
			}
			switch m.Type {
			case TypeCommand:
				cmd, err := field.ParseCommand(m.Command)
				if err != nil {
					log.Debug("ignoring command", zap.String("command", m.Command))
					continue
				}
				run.Queue(cmd)
			case TypeReset:
				run.Reset()
			}
		}

		stats := run.Stats()
		log.Info("session ended",
			zap.Int64("steps", stats.Steps),
			zap.Int64("commands", stats.CommandsApplied+stats.CommandsRejected),
		)
	}
}

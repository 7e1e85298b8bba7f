package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/counter"
	"github.com/gogpu/ggchart/debounce"
	"github.com/gogpu/ggchart/surface"
)

// Message types on the websocket channel.
const (
	msgResize  = "resize"
	msgLoad    = "load"
	msgScene   = "scene"
	msgCounter = "counter"
	msgScroll  = "scroll"
	msgSection = "section"
)

// clientMessage is sent by the page.
type clientMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	// Scroll reports.
	ScrollY  float64          `json:"scrollY,omitempty"`
	Sections []surface.Offset `json:"sections,omitempty"`
}

// sceneMessage replaces the content of one mount point.
type sceneMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	SVG  string `json:"svg"`
}

// counterMessage updates the text of one stat.
type counterMessage struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// sectionMessage names the section the navigation should highlight.
type sectionMessage struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// wsConn serializes writes to a websocket connection.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *wsConn) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ggchart.Logger().Debug("server: websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	s.metrics.connections.Inc()
	defer s.metrics.connections.Dec()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := &wsConn{conn: conn}
	d := debounce.New(func() {
		s.metrics.coalesced.Inc()
		if err := s.renderAll(); err != nil {
			ggchart.Logger().Warn("server: re-render", "err", err)
		}
		s.pushScenes(c)
	}, debounce.WithDelay(s.cfg.Debounce), debounce.WithName("resize"))
	defer d.Stop()

	active := ""

	var counters sync.WaitGroup
	defer counters.Wait()
	defer cancel()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ggchart.Logger().Debug("server: websocket read", "err", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			ggchart.Logger().Debug("server: bad websocket message", "err", err)
			continue
		}
		switch msg.Type {
		case msgResize:
			s.metrics.resizes.Inc()
			d.Trigger()
		case msgLoad:
			s.startCounters(ctx, c, &counters)
		case msgScroll:
			id := surface.ActiveSection(msg.Sections, msg.ScrollY)
			if id == active {
				continue
			}
			active = id
			if err := c.send(sectionMessage{Type: msgSection, ID: id}); err != nil {
				ggchart.Logger().Debug("server: push section", "err", err)
			}
		default:
			ggchart.Logger().Debug("server: unknown websocket message", "type", msg.Type)
		}
	}
}

// pushScenes sends the current scene of every mount point.
func (s *Server) pushScenes(c *wsConn) {
	for _, id := range s.page.IDs() {
		data, err := s.page.RenderSVG(id)
		if err != nil {
			ggchart.Logger().Debug("server: skip scene", "id", id, "err", err)
			continue
		}
		if err := c.send(sceneMessage{Type: msgScene, ID: id, SVG: string(data)}); err != nil {
			ggchart.Logger().Debug("server: push scene", "id", id, "err", err)
			return
		}
		s.metrics.renders.WithLabelValues(id, "svg").Inc()
	}
}

// startCounters animates every stat of the page, one goroutine each.
func (s *Server) startCounters(ctx context.Context, c *wsConn, wg *sync.WaitGroup) {
	for i, st := range s.cfg.Stats {
		i, st := i, st
		wg.Add(1)
		go func() {
			defer wg.Done()
			emit := func(text string) {
				if err := c.send(counterMessage{Type: msgCounter, Index: i, Text: text}); err != nil {
					ggchart.Logger().Debug("server: push counter", "index", i, "err", err)
				}
			}
			err := counter.Animate(ctx, st.Value, emit,
				counter.WithTick(s.counterTick), counter.WithLocale(s.cfg.LocaleTag()))
			if err != nil && ctx.Err() == nil {
				ggchart.Logger().Debug("server: counter", "index", i, "err", err)
			}
		}()
	}
}

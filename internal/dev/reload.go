package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is where browsers connect for reload notifications.
const ReloadPath = "/_site/reload"

// ReloadMessageType is the kind of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull  ReloadMessageType = "reload"
	ReloadTypeCSS   ReloadMessageType = "css"
	ReloadTypeError ReloadMessageType = "error"
	ReloadTypeClear ReloadMessageType = "clear"
)

// ReloadMessage is sent to browsers over the WebSocket.
type ReloadMessage struct {
	Type  ReloadMessageType `json:"type"`
	Error string            `json:"error,omitempty"`
	File  string            `json:"file,omitempty"`
}

const writeWait = 5 * time.Second

// ReloadServer holds the browser connections and broadcasts to them.
type ReloadServer struct {
	clients  map[*websocket.Conn]*sync.Mutex
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a reload server. Any origin may connect.
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		clients: make(map[*websocket.Conn]*sync.Mutex),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// browser goes away.
func (r *ReloadServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		r.logger.Debug("reload upgrade failed", "error", err)
		return
	}

	r.mu.Lock()
	r.clients[conn] = &sync.Mutex{}
	r.mu.Unlock()
	r.logger.Debug("reload client connected", "remote", req.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.remove(conn)
}

// NotifyReload asks every browser for a full page reload.
func (r *ReloadServer) NotifyReload() {
	r.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS asks every browser to re-fetch its stylesheets.
func (r *ReloadServer) NotifyCSS(file string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// NotifyError shows msg in the error overlay.
func (r *ReloadServer) NotifyError(msg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

// ClearError hides the error overlay.
func (r *ReloadServer) ClearError() {
	r.broadcast(ReloadMessage{Type: ReloadTypeClear})
}

func (r *ReloadServer) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	type client struct {
		conn *websocket.Conn
		mu   *sync.Mutex
	}
	clients := make([]client, 0, len(r.clients))
	for conn, mu := range r.clients {
		clients = append(clients, client{conn, mu})
	}
	r.mu.RUnlock()

	for _, c := range clients {
		c.mu.Lock()
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := c.conn.WriteMessage(websocket.TextMessage, data)
		c.mu.Unlock()
		if err != nil {
			r.remove(c.conn)
		}
	}
}

func (r *ReloadServer) remove(conn *websocket.Conn) {
	r.mu.Lock()
	_, ok := r.clients[conn]
	delete(r.clients, conn)
	r.mu.Unlock()
	if ok {
		conn.Close()
	}
}

// ClientCount returns the number of connected browsers.
func (r *ReloadServer) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close disconnects every browser.
func (r *ReloadServer) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for conn := range r.clients {
		conn.Close()
		delete(r.clients, conn)
	}
}

// ClientScript connects to ReloadPath and applies reload messages. It is
// inlined into every page in dev mode.
const ClientScript = `(function () {
  'use strict';
  var delay = 1000;
  var overlayID = 'site-dev-overlay';

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + '` + ReloadPath + `');
    ws.onopen = function () { delay = 1000; clear(); };
    ws.onmessage = function (e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }
      switch (msg.type) {
        case 'reload': location.reload(); break;
        case 'css': reloadCSS(); break;
        case 'error': show(msg.error); break;
        case 'clear': clear(); break;
      }
    };
    ws.onclose = function () {
      setTimeout(function () { delay = Math.min(delay * 2, 30000); connect(); }, delay);
    };
  }

  function reloadCSS() {
    document.querySelectorAll('link[rel="stylesheet"]').forEach(function (link) {
      var url = new URL(link.href);
      url.searchParams.set('_reload', Date.now());
      link.href = url.toString();
    });
  }

  function show(text) {
    clear();
    var overlay = document.createElement('div');
    overlay.id = overlayID;
    overlay.style.cssText = 'position:fixed;inset:0;background:rgba(0,0,0,.9);color:#fff;font:14px monospace;padding:24px;overflow:auto;z-index:99999';
    var pre = document.createElement('pre');
    pre.style.cssText = 'white-space:pre-wrap;max-width:800px;margin:0 auto';
    pre.textContent = text;
    overlay.appendChild(pre);
    document.body.appendChild(overlay);
  }

  function clear() {
    var overlay = document.getElementById(overlayID);
    if (overlay) overlay.remove();
  }

  connect();
})();`

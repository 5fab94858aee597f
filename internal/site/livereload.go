package site

import (
	"bytes"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// liveReloadPath is the websocket endpoint the injected snippet connects to.
const liveReloadPath = "/__livereload"

// reloadMessage is sent to every connected browser after a rebuild.
const reloadMessage = "reload"

const reloadSnippet = `<script>(function(){var p=location.protocol==='https:'?'wss://':'ws://';` +
	`var ws=new WebSocket(p+location.host+'` + liveReloadPath + `');` +
	`ws.onmessage=function(e){if(e.data==='` + reloadMessage + `')location.reload();};})();</script>`

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected preview tabs.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]struct{})}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Warnf("livereload: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// The client never sends anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.S().Debugf("livereload: websocket read: %v", err)
			}
			return
		}
	}
}

// broadcast tells every connected tab to reload. Writes happen under the
// hub lock, which keeps a single writer per connection.
func (h *reloadHub) broadcast() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	sent := 0
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reloadMessage)); err != nil {
			zap.S().Debugf("livereload: websocket write: %v", err)
			conn.Close()
			delete(h.conns, conn)
			continue
		}
		sent++
	}
	return sent
}

// injectReloadScript places the reload snippet before the last </body>, or
// at the end when the page has none.
func injectReloadScript(page []byte) []byte {
	idx := bytes.LastIndex(page, []byte("</body>"))
	if idx == -1 {
		return append(append([]byte{}, page...), reloadSnippet...)
	}
	out := make([]byte, 0, len(page)+len(reloadSnippet))
	out = append(out, page[:idx]...)
	out = append(out, reloadSnippet...)
	out = append(out, page[idx:]...)
	return out
}

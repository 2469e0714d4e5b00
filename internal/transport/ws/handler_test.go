package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"fragenspiel/internal/demo"
	"fragenspiel/internal/model"
	"fragenspiel/internal/service"
)

func newWatchServer(t *testing.T) (*httptest.Server, *service.DemoService) {
	t.Helper()
	store := demo.NewMemoryStore(30*time.Minute, time.Hour)
	t.Cleanup(func() { store.Close() })

	hub := NewHub()
	demoSvc := service.NewDemoService(store)
	demoSvc.SetBroadcaster(hub)

	r := mux.NewRouter()
	r.HandleFunc("/v1/ws/demo/{token}", NewHandler(hub, demoSvc).Watch).Methods("GET")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, demoSvc
}

func dialWatch(t *testing.T, srv *httptest.Server, token string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/demo/" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWatchRejectsUnknownSession(t *testing.T) {
	srv, _ := newWatchServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws/demo/bogus"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		t.Fatal("dial succeeded for unknown session")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("handshake response = %+v, want 404", resp)
	}
}

func TestWatcherReceivesStatusUpdates(t *testing.T) {
	srv, demoSvc := newWatchServer(t)
	ctx := context.Background()

	token, err := demoSvc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	conn := dialWatch(t, srv, token)

	// Registration races the handshake; give the hub a moment.
	time.Sleep(100 * time.Millisecond)

	if err := demoSvc.RecordAnswer(ctx, token, 1, 1, "watched answer"); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if msg.Type != MsgStatusUpdate {
		t.Fatalf("message type = %q, want %q", msg.Type, MsgStatusUpdate)
	}

	var statuses []model.CharacterStatus
	if err := json.Unmarshal(msg.Payload, &statuses); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	var found bool
	for _, st := range statuses {
		if st.ID == 1 && st.AnsweredCount == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("status payload missing the recorded answer: %+v", statuses)
	}
}

func TestWatchersOfOtherSessionsStayQuiet(t *testing.T) {
	srv, demoSvc := newWatchServer(t)
	ctx := context.Background()

	watched, _ := demoSvc.Start(ctx)
	other, _ := demoSvc.Start(ctx)

	conn := dialWatch(t, srv, other)

	if err := demoSvc.RecordAnswer(ctx, watched, 1, 1, "elsewhere"); err != nil {
		t.Fatalf("RecordAnswer() error = %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("watcher of another session received a message")
	}
}

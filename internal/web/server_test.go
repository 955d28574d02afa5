package web

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/peterkuimelis/kingdom/internal/game"
	kingdomnet "github.com/peterkuimelis/kingdom/internal/net"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kingdoms.yaml")
	data := "kingdoms:\n  - name: Tiny\n    cards: [Smithy, Village]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(NewServer(path).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: %s", url, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestCardsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var cards []CardInfo
	getJSON(t, ts.URL+"/api/cards", &cards)

	if len(cards) != len(game.CardRegistry) {
		t.Fatalf("expected %d cards, got %d", len(game.CardRegistry), len(cards))
	}
	for i := 1; i < len(cards); i++ {
		if cards[i-1].Cost > cards[i].Cost {
			t.Fatalf("cards not sorted by cost at %s", cards[i].Name)
		}
	}
	for _, c := range cards {
		if c.Name == "Gold" && (!c.Basic || c.Value != 3 || c.Types != "Treasure") {
			t.Errorf("unexpected Gold entry %+v", c)
		}
		if c.Name == "Moat" && (c.Basic || c.Types != "Action-Reaction") {
			t.Errorf("unexpected Moat entry %+v", c)
		}
	}
}

func TestKingdomsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var kingdoms []KingdomInfo
	getJSON(t, ts.URL+"/api/kingdoms", &kingdoms)
	if len(kingdoms) != 1 || kingdoms[0].Number != 1 || kingdoms[0].Name != "Tiny" || len(kingdoms[0].Cards) != 2 {
		t.Errorf("unexpected kingdoms %+v", kingdoms)
	}

	broken := httptest.NewServer(NewServer(filepath.Join(t.TempDir(), "missing.yaml")).Handler())
	defer broken.Close()
	resp, err := http.Get(broken.URL + "/api/kingdoms")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500 for a missing file, got %s", resp.Status)
	}
}

func TestIndexPage(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "/static/app.js") {
		t.Error("index page should load the app script")
	}

	resp, err = http.Get(ts.URL + "/static/app.js")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("static asset: %s", resp.Status)
	}

	resp, err = http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path: %s", resp.Status)
	}
}

func TestWebSocketBridgesToGameServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	// A stand-in game server: one question, then the end.
	answers := make(chan string, 1)
	joined := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		dec := json.NewDecoder(conn)
		enc := json.NewEncoder(conn)
		var join kingdomnet.ClientMessage
		if err := dec.Decode(&join); err != nil {
			return
		}
		joined <- join.Name
		_ = enc.Encode(kingdomnet.ServerMessage{Type: kingdomnet.MsgAsk, Kind: "yes_no", Prompt: "Reveal Moat?"})
		var resp kingdomnet.ClientMessage
		if err := dec.Decode(&resp); err != nil {
			return
		}
		answers <- resp.Text
		_ = enc.Encode(kingdomnet.ServerMessage{Type: kingdomnet.MsgGameOver, Result: "done"})
	}()

	ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ws, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.CloseNow()

	if err := wsjson.Write(ctx, ws, connectMessage{Type: "connect", Addr: ln.Addr().String(), Name: "Web"}); err != nil {
		t.Fatal(err)
	}
	if got := <-joined; got != "Web" {
		t.Errorf("game server saw join name %q", got)
	}

	var ask kingdomnet.ServerMessage
	if err := wsjson.Read(ctx, ws, &ask); err != nil {
		t.Fatal(err)
	}
	if ask.Type != kingdomnet.MsgAsk || ask.Prompt != "Reveal Moat?" {
		t.Fatalf("unexpected message %+v", ask)
	}
	if err := wsjson.Write(ctx, ws, kingdomnet.ClientMessage{Type: kingdomnet.MsgAnswer, Text: "y"}); err != nil {
		t.Fatal(err)
	}
	if got := <-answers; got != "y" {
		t.Errorf("game server got answer %q", got)
	}

	var over kingdomnet.ServerMessage
	if err := wsjson.Read(ctx, ws, &over); err != nil {
		t.Fatal(err)
	}
	if over.Type != kingdomnet.MsgGameOver || over.Result != "done" {
		t.Errorf("unexpected final message %+v", over)
	}
}

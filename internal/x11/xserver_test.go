package x11

import (
	"io"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgbutil"
)

// X core protocol opcodes answered or recorded by fakeXServer.
const (
	opCreateWindow   = 1
	opDestroyWindow  = 4
	opInternAtom     = 16
	opGetInputFocus  = 43
	opQueryExtension = 98
)

const (
	fakeRoot     = 0x100
	fakeIDBase   = 0x00400000
	fakeIDMask   = 0x001fffff
	badAllocCode = 11
)

// fakeXServer speaks just enough of the X11 wire protocol to run window
// setup against: the connection handshake with one screen, InternAtom,
// QueryExtension (every extension is absent) and GetInputFocus for round
// trips. InternAtom of a name in failAtoms answers with a BadAlloc error.
type fakeXServer struct {
	conn      net.Conn
	failAtoms map[string]bool

	mu       sync.Mutex
	requests []fakeRequest
	nextAtom uint32
	done     chan struct{}
}

type fakeRequest struct {
	opcode byte
	body   []byte
}

// newFakeXConn returns a client connection wired to a fresh fakeXServer.
func newFakeXConn(t *testing.T, failAtoms ...string) (*xgb.Conn, *fakeXServer) {
	t.Helper()
	// No Xauthority: the client connects without authorization data.
	t.Setenv("XAUTHORITY", filepath.Join(t.TempDir(), "missing"))

	client, server := net.Pipe()
	s := &fakeXServer{
		conn:      server,
		failAtoms: map[string]bool{},
		nextAtom:  500,
		done:      make(chan struct{}),
	}
	for _, name := range failAtoms {
		s.failAtoms[name] = true
	}
	go s.serve()

	xc, err := xgb.NewConnNet(client)
	if err != nil {
		t.Fatalf("NewConnNet: %v", err)
	}
	return xc, s
}

func newFakeConnection(t *testing.T, failAtoms ...string) (*Connection, *fakeXServer) {
	t.Helper()
	xc, s := newFakeXConn(t, failAtoms...)
	xu, err := xgbutil.NewConnXgb(xc)
	if err != nil {
		t.Fatalf("NewConnXgb: %v", err)
	}
	return &Connection{XUtil: xu, Root: xu.RootWin(), Display: "fake:0"}, s
}

// wait blocks until the client has closed its end of the connection and
// returns every request received.
func (s *fakeXServer) wait(t *testing.T) []fakeRequest {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(5 * time.Second):
		t.Fatalf("client did not close the connection")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]fakeRequest(nil), s.requests...)
}

func (s *fakeXServer) serve() {
	defer close(s.done)
	defer s.conn.Close()

	if err := s.handshake(); err != nil {
		return
	}

	var seq uint16
	for {
		head := make([]byte, 4)
		if _, err := io.ReadFull(s.conn, head); err != nil {
			return
		}
		body := make([]byte, int(xgb.Get16(head[2:]))*4-4)
		if _, err := io.ReadFull(s.conn, body); err != nil {
			return
		}
		seq++

		s.mu.Lock()
		s.requests = append(s.requests, fakeRequest{opcode: head[0], body: body})
		s.mu.Unlock()

		var resp []byte
		switch head[0] {
		case opInternAtom:
			name := string(body[4 : 4+xgb.Get16(body[0:])])
			if s.failAtoms[name] {
				resp = s.errorPacket(seq, badAllocCode)
			} else {
				resp = s.reply(seq)
				s.nextAtom++
				xgb.Put32(resp[8:], s.nextAtom)
			}
		case opQueryExtension:
			resp = s.reply(seq) // present = 0
		case opGetInputFocus:
			resp = s.reply(seq)
			xgb.Put32(resp[8:], fakeRoot)
		}
		if resp != nil {
			if _, err := s.conn.Write(resp); err != nil {
				return
			}
		}
	}
}

// handshake reads the connection setup request and answers with a setup
// block describing a single 1024x768 screen.
func (s *fakeXServer) handshake() error {
	req := make([]byte, 12)
	if _, err := io.ReadFull(s.conn, req); err != nil {
		return err
	}
	authLen := xgb.Pad(int(xgb.Get16(req[6:]))) + xgb.Pad(int(xgb.Get16(req[8:])))
	if _, err := io.ReadFull(s.conn, make([]byte, authLen)); err != nil {
		return err
	}

	setup := make([]byte, 80)
	setup[0] = 1 // success
	xgb.Put16(setup[2:], 11)
	xgb.Put16(setup[6:], uint16((len(setup)-8)/4))
	xgb.Put32(setup[12:], fakeIDBase)
	xgb.Put32(setup[16:], fakeIDMask)
	xgb.Put16(setup[26:], 0xffff) // maximum request length
	setup[28] = 1                 // one screen
	setup[34] = 8                 // min keycode
	setup[35] = 255               // max keycode

	screen := setup[40:]
	xgb.Put32(screen[0:], fakeRoot)
	xgb.Put32(screen[8:], 0xffffff) // white pixel
	xgb.Put16(screen[20:], 1024)
	xgb.Put16(screen[22:], 768)
	xgb.Put32(screen[32:], 0x21) // root visual
	screen[38] = 24              // root depth

	_, err := s.conn.Write(setup)
	return err
}

func (s *fakeXServer) reply(seq uint16) []byte {
	buf := make([]byte, 32)
	buf[0] = 1
	xgb.Put16(buf[2:], seq)
	return buf
}

func (s *fakeXServer) errorPacket(seq uint16, code byte) []byte {
	buf := make([]byte, 32)
	buf[1] = code
	xgb.Put16(buf[2:], seq)
	return buf
}

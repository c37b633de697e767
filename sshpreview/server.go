// Package sshpreview streams overlay frames to ssh clients as truecolor
// half-block text.
package sshpreview

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/gliderlabs/ssh"

	"github.com/phanxgames/overlay"
	"github.com/phanxgames/overlay/ansi"
)

// Source is the display the preview reads frames from.
type Source interface {
	overlay.Snapshotter
	Config() overlay.DisplayConfig
}

// Server wraps the ssh listener.
type Server struct {
	src      Source
	addr     string
	hostKey  string
	interval time.Duration

	srv *ssh.Server

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

// NewServer creates a server bound to addr that refreshes every interval.
// hostKey is a PEM private key file; empty uses an ephemeral key.
func NewServer(addr, hostKey string, src Source, interval time.Duration) *Server {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	s := &Server{src: src, addr: addr, hostKey: hostKey, interval: interval}
	s.srv = &ssh.Server{
		Addr:    addr,
		Handler: s.handleSession,
	}
	return s
}

// ListenAndServe begins listening for ssh connections. It blocks until
// Close is called or the listener fails. After Close it returns nil.
func (s *Server) ListenAndServe() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.hostKey != "" {
		if err := s.srv.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
			s.mu.Unlock()
			return fmt.Errorf("sshpreview: set host key: %w", err)
		}
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("sshpreview: listen: %w", err)
	}
	s.ln = ln
	s.mu.Unlock()

	overlay.Logger().Info("ssh preview listening", "addr", ln.Addr().String())
	err = s.srv.Serve(ln)

	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed || err == ssh.ErrServerClosed {
		return nil
	}
	return err
}

// Addr returns the listening address, or nil before ListenAndServe has
// bound its listener.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Close stops the listener and drops all sessions. A later ListenAndServe
// returns immediately.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.ln == nil {
		return nil
	}
	err := s.srv.Close()
	// Serve may not have tracked the listener yet.
	if lerr := s.ln.Close(); err == nil && lerr != nil && !errors.Is(lerr, net.ErrClosed) {
		err = lerr
	}
	return err
}

func (s *Server) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		_ = sess.Exit(1)
		return
	}
	user := sess.User()
	overlay.Logger().Info("preview connected", "user", user, "remote", sess.RemoteAddr().String())
	defer overlay.Logger().Info("preview disconnected", "user", user)

	cols, rows := ptyReq.Window.Width, ptyReq.Window.Height
	var termMu sync.Mutex

	io.WriteString(sess, ansi.EnableAltScreen())
	io.WriteString(sess, ansi.HideCursor())
	io.WriteString(sess, ansi.ClearScreen())
	defer func() {
		io.WriteString(sess, ansi.ShowCursor())
		io.WriteString(sess, ansi.DisableAltScreen())
	}()

	quitCh := make(chan struct{})
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil || quitRequested(buf[:n]) {
				close(quitCh)
				return
			}
		}
	}()

	resized := make(chan struct{}, 1)
	go func() {
		for win := range winCh {
			termMu.Lock()
			cols, rows = win.Width, win.Height
			termMu.Unlock()
			select {
			case resized <- struct{}{}:
			default:
			}
		}
	}()

	cfg := s.src.Config()
	var (
		enc  ansi.Encoder
		buf  []uint16
		last uint64
		seen bool
	)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-quitCh:
			return
		case <-sess.Context().Done():
			return
		case <-resized:
			io.WriteString(sess, ansi.ClearScreen())
			seen = false
		case <-ticker.C:
		}

		var n uint64
		buf, n = s.src.Snapshot(buf)
		if seen && n == last {
			continue
		}
		last, seen = n, true

		termMu.Lock()
		c, r := cols, rows
		termMu.Unlock()

		out := enc.Encode(overlay.FrameImage(buf, cfg.Width, cfg.Height, 1), c, r)
		if _, err := io.WriteString(sess, out); err != nil {
			return
		}
	}
}

// quitRequested reports whether the input contains q, Q or Ctrl-C.
func quitRequested(data []byte) bool {
	for _, b := range data {
		switch b {
		case 'q', 'Q', 3:
			return true
		}
	}
	return false
}

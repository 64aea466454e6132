package network

import (
	"net"
	"testing"
	"time"
)

func pipeConnection(t *testing.T) (*Connection, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	conn := NewConnection(server, 1024)
	t.Cleanup(func() {
		client.Close()
		conn.Close()
	})
	return conn, client
}

func TestReadLineTrimsTerminator(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"1028|g1,8\n", "1028|g1,8"},
		{"1028|g1,8\r\n", "1028|g1,8"},
		{"\r\n", ""},
	}
	for _, tt := range tests {
		conn, client := pipeConnection(t)
		go client.Write([]byte(tt.raw))

		line, err := conn.ReadLine(time.Second)
		if err != nil {
			t.Fatalf("ReadLine(%q): %v", tt.raw, err)
		}
		if line != tt.want {
			t.Errorf("ReadLine(%q) = %q, want %q", tt.raw, line, tt.want)
		}
	}
}

func TestReadLineTimeout(t *testing.T) {
	conn, _ := pipeConnection(t)

	_, err := conn.ReadLine(50 * time.Millisecond)
	netErr, ok := err.(net.Error)
	if !ok || !netErr.Timeout() {
		t.Fatalf("ReadLine error = %v, want timeout", err)
	}
}

func TestWriteLineAppendsTerminator(t *testing.T) {
	conn, client := pipeConnection(t)

	got := make(chan string, 1)
	go func() {
		buf := make([]byte, 64)
		n, _ := client.Read(buf)
		got <- string(buf[:n])
	}()

	if err := conn.WriteLine("1000"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if s := <-got; s != "1000\n" {
		t.Errorf("wrote %q, want %q", s, "1000\n")
	}

	conn.Close()
	if err := conn.WriteLine("1000"); err == nil {
		t.Error("WriteLine after Close should fail")
	}
}

func TestRegistry(t *testing.T) {
	reg := NewConnectionRegistry()

	a, _ := pipeConnection(t)
	b, _ := pipeConnection(t)

	reg.Register("10.0.0.1:100", a)
	reg.Register("10.0.0.2:200", b)
	if reg.Count() != 2 {
		t.Fatalf("Count = %d, want 2", reg.Count())
	}

	// Re-registering the same remote closes the old connection.
	a2, _ := pipeConnection(t)
	reg.Register("10.0.0.1:100", a2)
	if !a.IsClosed() {
		t.Error("old connection not closed on re-register")
	}
	if reg.Count() != 2 {
		t.Errorf("Count after re-register = %d, want 2", reg.Count())
	}

	reg.Unregister("10.0.0.2:200")
	if reg.Count() != 1 || !b.IsClosed() {
		t.Error("Unregister did not close and remove the connection")
	}

	reg.CloseAll()
	if reg.Count() != 0 || !a2.IsClosed() {
		t.Error("CloseAll left connections behind")
	}
}

func TestCleanStale(t *testing.T) {
	reg := NewConnectionRegistry()

	stale, _ := pipeConnection(t)
	reg.Register("10.0.0.1:100", stale)

	// Fresh activity: nothing to clean.
	if n := reg.CleanStale(time.Minute); n != 0 {
		t.Fatalf("CleanStale = %d, want 0", n)
	}

	time.Sleep(20 * time.Millisecond)
	if n := reg.CleanStale(10 * time.Millisecond); n != 1 {
		t.Fatalf("CleanStale = %d, want 1", n)
	}
	if !stale.IsClosed() {
		t.Error("stale connection not closed")
	}
	if reg.Count() != 0 {
		t.Errorf("Count = %d, want 0", reg.Count())
	}
}

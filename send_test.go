package formtree

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	var gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte("accepted"))
	}))
	defer srv.Close()

	n := New(Pairs{
		{Key: "name", Val: "Alice"},
		{Key: "address", Val: Pairs{{Key: "city", Val: "Oslo"}}},
	})
	body, err := n.Send(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "accepted", body)
	require.Equal(t, "application/x-www-form-urlencoded", gotType)
	require.Equal(t, "name=Alice&address%5Bcity%5D=Oslo", gotBody)
}

func TestSendReturnsBodyOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("rejected"))
	}))
	defer srv.Close()

	// Only transport failures error; an HTTP error status still delivers.
	body, err := Leaf("x").Send(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, "rejected", body)
}

func TestSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	_, err := Leaf("x").SendTimeout(context.Background(), srv.URL, time.Second)
	require.Error(t, err)
}

func TestSendBadURL(t *testing.T) {
	_, err := Leaf("x").Send(context.Background(), "://nope")
	require.Error(t, err)
}

package utils

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.50s"},
		{90 * time.Second, "1m:30s"},
		{2*time.Hour + 5*time.Minute + 7*time.Second, "2h:5m:7s"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatTime(tc.d))
	}
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -2.5, Min(3, -2.5, 7))
	assert.Equal(t, 7.0, Max(3, -2.5, 7))
	assert.Equal(t, "a", Min("c", "a", "b"))
	assert.Equal(t, 4, Max(4))
	assert.Panics(t, func() { Min[int]() })
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 1))
	assert.Equal(t, 1.0, Clamp(2.0, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/fabric.csv"))
	assert.True(t, IsURL("http://example.com/fabric.csv"))
	assert.False(t, IsURL("data/fabric.csv"))
}

func TestDownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fabric.csv" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "0.6,0.3,0.1\n")
	}))
	defer srv.Close()

	f, err := DownloadFile(context.Background(), srv.URL+"/fabric.csv")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "0.6,0.3,0.1\n", string(data))

	_, err = DownloadFile(context.Background(), srv.URL+"/missing.csv")
	assert.ErrorContains(t, err, "404")
}

func TestSpinnerDisabled(t *testing.T) {
	s := &Spinner{}
	s.Start("working")
	s.Stop()
	assert.Nil(t, s.stopChan)
}

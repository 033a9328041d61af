package oscommand

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLauncherFor(t *testing.T) {
	const url = "https://youtube.com/results?search_query=cats"
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{url}},
		{goos: "freebsd", wantName: "xdg-open", wantArgs: []string{url}},
		{goos: "darwin", wantName: "open", wantArgs: []string{url}},
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", url}},
		{goos: "plan9", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := launcherFor(tt.goos, url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("launcherFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if name != tt.wantName || !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("launcherFor() = %q %v, want %q %v", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestOSOpener_Open(t *testing.T) {
	t.Run("runs the launcher", func(t *testing.T) {
		var gotName string
		var gotArgs []string
		o := &OSOpener{goos: "darwin", run: func(ctx context.Context, name string, args ...string) (string, error) {
			gotName, gotArgs = name, args
			return "", nil
		}}
		if err := o.Open(context.Background(), "https://example.com"); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if gotName != "open" || !reflect.DeepEqual(gotArgs, []string{"https://example.com"}) {
			t.Errorf("ran %q %v", gotName, gotArgs)
		}
	})

	t.Run("reports launcher stderr", func(t *testing.T) {
		o := &OSOpener{goos: "linux", run: func(ctx context.Context, name string, args ...string) (string, error) {
			return "no method available for opening\n", errors.New("exit status 3")
		}}
		err := o.Open(context.Background(), "https://example.com")
		if err == nil || !strings.Contains(err.Error(), "no method available for opening") {
			t.Errorf("Open() error = %v, want stderr in message", err)
		}
	})

	t.Run("unsupported platform", func(t *testing.T) {
		o := &OSOpener{goos: "plan9", run: func(ctx context.Context, name string, args ...string) (string, error) {
			t.Fatal("run should not be called")
			return "", nil
		}}
		if err := o.Open(context.Background(), "https://example.com"); err == nil {
			t.Error("Open() error = nil, want unsupported platform error")
		}
	})
}

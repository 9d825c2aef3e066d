package browser

import (
	"runtime"
	"slices"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{goos: "darwin", wantName: "open", wantArgs: []string{"https://x"}},
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{"https://x"}},
		{goos: "windows", wantName: "cmd", wantArgs: []string{"/c", "start", "", "https://x"}},
		{goos: "plan9", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := command(tt.goos, "https://x")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if name != tt.wantName || !slices.Equal(args, tt.wantArgs) {
				t.Errorf("command = %q %q, want %q %q", name, args, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestOpenURL(t *testing.T) {
	if runtime.GOOS != "darwin" && runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skip("unsupported platform")
	}

	var launched []string
	o := &Opener{launch: func(name string, args ...string) error {
		launched = append([]string{name}, args...)
		return nil
	}}

	if err := o.OpenURL("https://danbooru.donmai.us/wiki_pages/knight"); err != nil {
		t.Fatalf("OpenURL: %v", err)
	}
	if launched[len(launched)-1] != "https://danbooru.donmai.us/wiki_pages/knight" {
		t.Errorf("launched %q", launched)
	}

	launched = nil
	if err := o.OpenURL("file:///etc/passwd"); err == nil {
		t.Error("expected error for non-web url")
	}
	if launched != nil {
		t.Error("non-web url must not be launched")
	}
}

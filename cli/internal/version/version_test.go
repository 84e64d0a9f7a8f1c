package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromBuildInfo(t *testing.T) {
	tests := []struct {
		name     string
		main     string
		override string
		want     Info
		wantErr  bool
	}{
		{
			name: "module version",
			main: "v1.2.3",
			want: Info{Major: "1", Minor: "2", Patch: "3", GitVersion: "1.2.3"},
		},
		{
			name:     "override with prerelease and metadata",
			main:     "v1.2.3",
			override: "v2.0.0-rc.1+abc",
			want:     Info{Major: "2", Minor: "0", Patch: "0", PreRelease: "rc.1", Meta: "abc", GitVersion: "2.0.0-rc.1+abc"},
		},
		{
			name: "development build",
			main: "(devel)",
			want: Info{Major: "0", Minor: "0", Patch: "0", PreRelease: "dev", GitVersion: "0.0.0-dev"},
		},
		{
			name:     "invalid override",
			override: "not-a-version",
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bi := &debug.BuildInfo{GoVersion: "go1.25.4", Main: debug.Module{Version: tt.main}}
			got, err := FromBuildInfo(bi, tt.override)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "go1.25.4", got.GoVersion)
			got.GoVersion, got.Compiler, got.Platform = "", "", ""
			require.Equal(t, tt.want, got)
		})
	}
}

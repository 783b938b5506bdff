package versioninfo

import "testing"

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "dev fallback",
			info: Info{},
			want: "dev",
		},
		{
			name: "plain version",
			info: Info{Version: "1.2.3"},
			want: "v1.2.3",
		},
		{
			name: "v prefix normalized",
			info: Info{Version: "v1.2.3"},
			want: "v1.2.3",
		},
		{
			name: "non-semver version passed through",
			info: Info{Version: "nightly"},
			want: "nightly",
		},
		{
			name: "dev with commit",
			info: Info{Commit: "abc1234"},
			want: "dev, commit abc1234",
		},
		{
			name: "all fields",
			info: Info{Version: "0.1.0", Commit: "abc1234", Date: "2026-08-22", BuiltBy: "goreleaser"},
			want: "v0.1.0, commit abc1234, built at 2026-08-22, built by goreleaser",
		},
		{
			name: "release without date",
			info: Info{Version: "0.1.0", Commit: "abc1234", BuiltBy: "goreleaser"},
			want: "v0.1.0, commit abc1234, built by goreleaser",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.info.String(); got != tc.want {
				t.Errorf("Info.String() = %q; want %q", got, tc.want)
			}
		})
	}
}

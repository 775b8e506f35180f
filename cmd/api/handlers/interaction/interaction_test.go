package handlers

import (
	"testing"

	"playtube.com/pkg/errno"
)

func TestParseToggleLike(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    bool
		wantErr bool
	}{
		{name: "true", raw: "true", want: true},
		{name: "false", raw: "false", want: false},
		{name: "missing", raw: "", wantErr: true},
		{name: "numeric", raw: "1", wantErr: true},
		{name: "cased", raw: "True", wantErr: true},
		{name: "garbage", raw: "yes", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseToggleLike(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseToggleLike(%q) accepted, want error", tc.raw)
				}
				if errno.ConvertErr(err).ErrCode != errno.RequestErrCode {
					t.Errorf("parseToggleLike(%q) code = %d, want %d",
						tc.raw, errno.ConvertErr(err).ErrCode, errno.RequestErrCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseToggleLike(%q) failed: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("parseToggleLike(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

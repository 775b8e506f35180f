package guard

import (
	"testing"

	"playtube.com/pkg/errno"
)

func TestMutation(t *testing.T) {
	cases := []struct {
		name     string
		ownerId  int64
		viewerId int64
		wantCode int64
	}{
		{"Owner", 7, 7, errno.SuccessCode},
		{"Anonymous", 7, 0, errno.TokenInvalidCode},
		{"OtherUser", 7, 8, errno.ForbiddenErrCode},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Mutation(c.ownerId, c.viewerId)
			got := errno.ConvertErr(err).ErrCode
			if got != c.wantCode {
				t.Errorf("Mutation(%d, %d) code = %d, want %d", c.ownerId, c.viewerId, got, c.wantCode)
			}
		})
	}
}

func TestIsOwner(t *testing.T) {
	if IsOwner(7, 0) {
		t.Error("anonymous viewer must not own anything")
	}
	if IsOwner(7, 8) {
		t.Error("different viewer must not be owner")
	}
	if !IsOwner(7, 7) {
		t.Error("matching viewer must be owner")
	}
}

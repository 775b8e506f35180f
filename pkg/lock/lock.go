package lock

import (
	"fmt"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"

	"playtube.com/pkg/cache"
	"playtube.com/pkg/constants"
)

var rs *redsync.Redsync

func Init() {
	pool := goredis.NewPool(cache.Client())
	rs = redsync.New(pool)
}

// ToggleMutex serializes like toggles for one (viewer, target) pair. The
// toggle is read-decide-write; without the mutex two concurrent toggles by
// the same viewer can both read the old row and lose one update.
func ToggleMutex(kind string, targetId, userId int64) *redsync.Mutex {
	name := fmt.Sprintf("lock:toggle:%s:%d:%d", kind, targetId, userId)
	return rs.NewMutex(name, redsync.WithExpiry(constants.ToggleLockExpire))
}

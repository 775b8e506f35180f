package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch          = int64(1577836800000) // 2020-01-01
	workerIDBits   = uint(10)
	sequenceBits   = uint(12)
	maxWorkerID    = int64(-1 ^ (-1 << workerIDBits))
	maxSequence    = int64(-1 ^ (-1 << sequenceBits))
	timestampShift = sequenceBits + workerIDBits
	workerIDShift  = sequenceBits
)

// Snowflake generates time-ordered unique ids for entity rows.
type Snowflake struct {
	mutex    sync.Mutex
	lastTime int64
	workerID int64
	sequence int64
}

func NewSnowflake(workerID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	return &Snowflake{workerID: workerID}, nil
}

func (s *Snowflake) NextID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now().UnixMilli()
	if now < s.lastTime {
		// clock moved backwards, wait it out
		for now < s.lastTime {
			now = time.Now().UnixMilli()
		}
	}
	if now == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for now <= s.lastTime {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		s.sequence = 0
	}
	s.lastTime = now

	return (now-epoch)<<timestampShift | s.workerID<<workerIDShift | s.sequence
}

var defaultNode = func() *Snowflake {
	node, err := NewSnowflake(1)
	if err != nil {
		panic(err)
	}
	return node
}()

// GenID returns an id from the process-wide generator.
func GenID() int64 {
	return defaultNode.NextID()
}

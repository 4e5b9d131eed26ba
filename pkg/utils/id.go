package utils

import (
	"fmt"
	"sync"
	"time"
)

// ContributionIDPrefix marks ids minted for user-added topics, as opposed
// to built-in catalog ids being overridden.
const ContributionIDPrefix = "user-topic-"

var (
	idMu      sync.Mutex
	lastStamp int64
)

// GenerateContributionID returns a process-unique id for a new topic:
// the fixed prefix plus a strictly increasing nanosecond timestamp.
func GenerateContributionID() string {
	idMu.Lock()
	defer idMu.Unlock()

	stamp := time.Now().UnixNano()
	if stamp <= lastStamp {
		stamp = lastStamp + 1
	}
	lastStamp = stamp

	return fmt.Sprintf("%s%d", ContributionIDPrefix, stamp)
}

package id

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
// IDs are time-ordered and unique across distributed instances.
func New() int64 {
	return node.Generate().Int64()
}

// NewString returns a new ID in its decimal form, as used for session IDs.
func NewString() string {
	return node.Generate().String()
}

// Valid reports whether s looks like an ID produced by NewString.
func Valid(s string) bool {
	v, err := strconv.ParseInt(s, 10, 64)
	return err == nil && v > 0
}

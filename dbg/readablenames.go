package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Converts edge ids into readable names, so that a long crossing report is
// easier to scan than a wall of numbers. Names are handed out lazily in order
// of demand, so the same id gets the same name within one Namer only.
type Namer struct {
	memo  map[int]string
	taken map[string]struct{}
}

func NewNamer() *Namer {
	return &Namer{
		memo:  make(map[int]string),
		taken: make(map[string]struct{}),
	}
}

func (n *Namer) Name(id int) string {
	if r, ok := n.memo[id]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	// Names can collide, and a collision would make two edges look the same
	if _, ok := n.taken[r]; ok {
		r = fmt.Sprintf("%s%d", r, id)
	}
	n.taken[r] = struct{}{}
	n.memo[id] = r
	return r
}

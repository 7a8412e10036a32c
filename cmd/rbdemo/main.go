// Command rbdemo exercises the red-black tree with the three classic
// key shapes: strings, ints, and a key embedded in a larger record. The
// in-order dumps color each key by its node color; black nodes print
// yellow so they stay readable on dark terminals.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vijunag/rbtree/intrusive"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool
	cmd := &cobra.Command{
		Use:   "rbdemo",
		Short: "demonstrate the intrusive red-black tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			stringDemo()
			intDemo()
			recordDemo()
			return nil
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	return cmd
}

var (
	redKey   = color.New(color.FgRed)
	blackKey = color.New(color.FgYellow)
)

// dump prints the tree's records in ascending order, red nodes in red
// and black nodes in yellow.
func dump[R any](tr *intrusive.Tree[R]) {
	it := tr.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		c := blackKey
		if it.Node().Red() {
			c = redKey
		}
		c.Printf("%v ", *it.Cur())
	}
	fmt.Println()
}

func stringDemo() {
	cmp := func(a, b *string) int { return strings.Compare(*a, *b) }
	tr := intrusive.Make(cmp)

	keys := []string{"hello", "world", "foo", "bar", "abc"}
	nodes := make([]intrusive.Node[string], len(keys))

	fmt.Println("Inserting strings")
	for i := range keys {
		nodes[i].Init(&keys[i])
		tr.Insert(&nodes[i])
		dump(&tr)
	}

	fmt.Println("Searching the string tree")
	reportSearch(&tr, "hello")
	reportSearch(&tr, "abc")
}

func intDemo() {
	cmp := func(a, b *int) int { return *a - *b }
	tr := intrusive.Make(cmp)

	keys := []int{7, 6, 5, 4}
	nodes := make([]intrusive.Node[int], len(keys))

	fmt.Println("Inserting ints")
	for i := range keys {
		nodes[i].Init(&keys[i])
		tr.Insert(&nodes[i])
	}
	dump(&tr)

	fmt.Println("Searching the int tree")
	reportSearch(&tr, 7)
	reportSearch(&tr, 99)
}

// account is the embedded-record scenario: the tree node lives inside
// the caller's own struct and a lookup hands back that struct.
type account struct {
	id   int
	name string
	node intrusive.Node[account]
}

func recordDemo() {
	cmp := func(a, b *account) int { return a.id - b.id }
	tr := intrusive.Make(cmp)

	accounts := []account{
		{id: 1, name: "alice"},
		{id: 2, name: "bob"},
		{id: 3, name: "carol"},
	}
	fmt.Println("Inserting accounts")
	for i := range accounts {
		accounts[i].node.Init(&accounts[i])
		tr.Insert(&accounts[i].node)
	}
	it := tr.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		c := blackKey
		if it.Node().Red() {
			c = redKey
		}
		c.Printf("%d:%s ", it.Cur().id, it.Cur().name)
	}
	fmt.Println()

	fmt.Println("Searching the account tree")
	for _, id := range []int{1, 4} {
		if rec, ok := tr.Get(&account{id: id}); ok {
			fmt.Printf("account %d is %s\n", id, rec.name)
		} else {
			fmt.Printf("account %d not found\n", id)
		}
	}
}

func reportSearch[R any](tr *intrusive.Tree[R], key R) {
	if _, ok := tr.Get(&key); ok {
		fmt.Printf("key %v found\n", key)
	} else {
		fmt.Printf("key %v not found\n", key)
	}
}

package hashmap

import (
	"testing"
)

func TestListInsertRemove(t *testing.T) {
	l := &list[byte, int]{}
	l.Init(4)

	nexts := func() (s string) {
		node := &l.nodes[0]
		for node.next != 0 {
			node = &l.nodes[node.next]
			s += string(node.key)
		}
		return
	}

	prevs := func() (s string) {
		node := &l.nodes[0]
		for node.prev != 0 {
			node = &l.nodes[node.prev]
			s += string(node.key)
		}
		return
	}

	a := l.InsertBefore(0, 'a', 1)
	l.InsertBefore(0, 'b', 2)
	c := l.InsertBefore(0, 'c', 3)
	l.InsertBefore(a, 'd', 4)

	if want, got := "dabc", nexts(); want != got {
		t.Fatalf("nexts want=%#v got=%#v\n", want, got)
	}
	if want, got := "cbad", prevs(); want != got {
		t.Fatalf("prevs want=%#v got=%#v\n", want, got)
	}
	if want, got := 4, l.Len(); want != got {
		t.Fatalf("len want=%#v got=%#v\n", want, got)
	}

	if next := l.Remove(a); l.nodes[next].key != 'b' {
		t.Fatalf("remove should return the following node, got %#v", l.nodes[next].key)
	}
	if want, got := "dbc", nexts(); want != got {
		t.Fatalf("nexts want=%#v got=%#v\n", want, got)
	}

	if next := l.Remove(c); next != 0 {
		t.Fatalf("removing the back should return the root, got %v", next)
	}
	if want, got := "bd", prevs(); want != got {
		t.Fatalf("prevs want=%#v got=%#v\n", want, got)
	}

	// freed slots are reused last-in first-out
	if i := l.InsertBefore(0, 'e', 5); i != c {
		t.Fatalf("want reused slot %v, got %v", c, i)
	}
	if i := l.InsertBefore(0, 'f', 6); i != a {
		t.Fatalf("want reused slot %v, got %v", a, i)
	}
	if want, got := "dbef", nexts(); want != got {
		t.Fatalf("nexts want=%#v got=%#v\n", want, got)
	}
	if want, got := 5, len(l.nodes); want != got {
		t.Fatalf("arena size want=%#v got=%#v\n", want, got)
	}
}

func TestListReset(t *testing.T) {
	l := &list[string, *int]{}
	l.Init(0)

	v := 1
	for _, k := range []string{"a", "b", "c"} {
		l.InsertBefore(0, k, &v)
	}
	l.Remove(l.Front())
	l.Reset()

	if l.Len() != 0 || l.Front() != 0 || l.Back() != 0 || l.free != 0 {
		t.Fatalf("list should be empty after reset: len=%v front=%v back=%v free=%v", l.Len(), l.Front(), l.Back(), l.free)
	}
	if len(l.nodes) != 1 {
		t.Fatalf("only the root should remain, got %v nodes", len(l.nodes))
	}
	if l.nodes[:cap(l.nodes)][2].value != nil {
		t.Fatal("reset should release values")
	}

	i := l.InsertBefore(0, "d", &v)
	if i != 1 || l.Front() != 1 || l.Back() != 1 {
		t.Fatalf("insert after reset: index=%v front=%v back=%v", i, l.Front(), l.Back())
	}
}

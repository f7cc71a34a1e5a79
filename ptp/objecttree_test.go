package ptp

import "testing"

func queueObjectHandles(m *mockTransport, opCode uint16, tid uint32, handles []uint32) {
	p := NewWriteCursor()
	p.WriteU32Array(handles)
	m.QueueContainer(dataThenResponse(opCode, tid, p.Bytes()), chunkSize)
}

func queueObjectInfo(m *mockTransport, tid uint32, info ObjectInfo) {
	m.QueueContainer(dataThenResponse(OC_GetObjectInfo, tid, encodeObjectInfo(info)), chunkSize)
}

func TestBuildObjectTreeFlat(t *testing.T) {
	m := &mockTransport{}
	queueObjectHandles(m, OC_GetObjectHandles, 0, []uint32{1, 2})
	queueObjectInfo(m, 1, ObjectInfo{ObjectFormat: 0x3801, Filename: "a.jpg"})
	queueObjectInfo(m, 2, ObjectInfo{ObjectFormat: 0x3801, Filename: "b.jpg"})
	s := newTestSession(m)

	tree, err := BuildObjectTree(s, 0x00010001, 0xFFFFFFFF)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Roots) != 2 {
		t.Fatalf("len(Roots) = %d, want 2", len(tree.Roots))
	}
	if tree.Roots[0].Info.Filename != "a.jpg" || tree.Roots[1].Info.Filename != "b.jpg" {
		t.Fatalf("got %+v / %+v", tree.Roots[0].Info, tree.Roots[1].Info)
	}
}

func TestBuildObjectTreeDescendsIntoAssociations(t *testing.T) {
	m := &mockTransport{}
	queueObjectHandles(m, OC_GetObjectHandles, 0, []uint32{10})
	queueObjectInfo(m, 1, ObjectInfo{ObjectFormat: FormatAssociation, Filename: "DCIM"})
	queueObjectHandles(m, OC_GetObjectHandles, 2, []uint32{20})
	queueObjectInfo(m, 3, ObjectInfo{ObjectFormat: 0x3801, Filename: "c.jpg"})
	s := newTestSession(m)

	tree, err := BuildObjectTree(s, 0x00010001, 0xFFFFFFFF)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Roots) != 1 || tree.Roots[0].Info.Filename != "DCIM" {
		t.Fatalf("got %+v", tree.Roots)
	}
	if len(tree.Roots[0].Children) != 1 || tree.Roots[0].Children[0].Info.Filename != "c.jpg" {
		t.Fatalf("children = %+v", tree.Roots[0].Children)
	}

	var visited []string
	if err := tree.Walk(func(path string, n *ObjectNode) error {
		visited = append(visited, path)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	if len(visited) != 2 || visited[0] != "DCIM" || visited[1] != "DCIM/c.jpg" {
		t.Fatalf("visited = %v, want [DCIM DCIM/c.jpg]", visited)
	}
}

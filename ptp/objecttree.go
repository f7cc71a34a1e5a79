package ptp

// ObjectNode is one object in a built ObjectTree: its handle, decoded
// ObjectInfo, and children (populated only when the object is an
// association/folder, i.e. ObjectInfo.ObjectFormat == FormatAssociation).
type ObjectNode struct {
	Handle   uint32
	Info     ObjectInfo
	Children []*ObjectNode
}

// FormatAssociation is the ObjectFormatCode value PTP uses for folders.
const FormatAssociation uint16 = 0x3001

// ObjectTree is a snapshot of a storage's object hierarchy, built by
// walking GetObjectHandles/GetObjectInfo from a root handle.
type ObjectTree struct {
	StorageID uint32
	Roots     []*ObjectNode
}

// BuildObjectTree walks storageID's object hierarchy starting at
// root (use 0xFFFFFFFF for "root of storage"), recursively descending
// into associations, and returns the resulting tree.
//
// This is a thin convenience built on the session facade — it issues
// one GetObjectHandles and one GetObjectInfo per object visited, with
// no batching. Directory walking is not a core transaction, just a
// caller built atop the core operations.
func BuildObjectTree(s *Session, storageID uint32, root uint32) (*ObjectTree, error) {
	handles, err := s.GetObjectHandles(storageID, root, nil)
	if err != nil {
		return nil, err
	}
	tree := &ObjectTree{StorageID: storageID}
	for _, h := range handles {
		node, err := buildNode(s, storageID, h)
		if err != nil {
			return nil, err
		}
		tree.Roots = append(tree.Roots, node)
	}
	return tree, nil
}

func buildNode(s *Session, storageID, handle uint32) (*ObjectNode, error) {
	info, err := s.GetObjectInfo(handle)
	if err != nil {
		return nil, err
	}
	node := &ObjectNode{Handle: handle, Info: info}
	if info.ObjectFormat != FormatAssociation {
		return node, nil
	}
	children, err := s.GetObjectHandles(storageID, handle, nil)
	if err != nil {
		return nil, err
	}
	for _, h := range children {
		child, err := buildNode(s, storageID, h)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// Walk calls fn for every node in the tree, depth-first, pre-order,
// with path set to the "/"-joined Filename components from the root
// down to (and including) that node. Walk stops and returns the first
// error fn returns.
func (t *ObjectTree) Walk(fn func(path string, n *ObjectNode) error) error {
	for _, root := range t.Roots {
		if err := walkNode("", root, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(prefix string, n *ObjectNode, fn func(string, *ObjectNode) error) error {
	path := n.Info.Filename
	if prefix != "" {
		path = prefix + "/" + path
	}
	if err := fn(path, n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walkNode(path, c, fn); err != nil {
			return err
		}
	}
	return nil
}

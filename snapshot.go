package seqtree

/*
BSD 3-Clause License

Please refer to the License file in the repository root.

*/

import "github.com/ugorji/go/codec"

// EncodeSnapshot serializes the element sequence to msgpack.
//
// Only the in-order values are written, not the node structure; the tree
// decoded from a snapshot is equivalent as a sequence but need not have the
// node-for-node shape of the original. Element types must be encodable by
// the codec, which covers all plain data types.
func (t *Tree[E]) EncodeSnapshot() ([]byte, error) {
	var out []byte
	var mh codec.MsgpackHandle
	enc := codec.NewEncoderBytes(&out, &mh)
	if err := enc.Encode(t.Len()); err != nil {
		return nil, err
	}
	var encErr error
	t.ForEach(func(v E) bool {
		encErr = enc.Encode(v)
		return encErr == nil
	})
	if encErr != nil {
		return nil, encErr
	}
	return out, nil
}

// DecodeSnapshot rebuilds a tree from data produced by EncodeSnapshot.
func DecodeSnapshot[E any](data []byte) (*Tree[E], error) {
	var mh codec.MsgpackHandle
	dec := codec.NewDecoderBytes(data, &mh)
	var count int
	if err := dec.Decode(&count); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, ErrCorruptSnapshot
	}
	t := New[E]()
	for i := 0; i < count; i++ {
		var v E
		if err := dec.Decode(&v); err != nil {
			T().Errorf("seqtree snapshot: cannot decode element %d: %s", i, err.Error())
			return nil, err
		}
		t.PushBack(v)
	}
	return t, nil
}

package extract

import "github.com/synadia-labs/protoprobe/wire"

// maxSiblings bounds the scan for messages emitted under distinct numbers.
const maxSiblings = 99

// repeatedMessages returns the entries of a repeated message field n.
// Producers emit such a field either as a true repeated field, which
// decodes to an array under subMesssage_n, or as one message per distinct
// field number, subMesssage_1 through subMesssage_99. A single object at n
// is the one-entry case of the second form.
func repeatedMessages(o *wire.Object, n uint32) []*wire.Object {
	if node, ok := o.Get(msgKey(n)); ok && node.Kind() == wire.ArrayKind {
		return node.Objects()
	}
	return siblingMessages(o)
}

// siblingMessages collects the messages at subMesssage_1..99 in field
// order. A key that repeated contributes every member of its array.
func siblingMessages(o *wire.Object) []*wire.Object {
	var out []*wire.Object
	for i := uint32(1); i <= maxSiblings; i++ {
		if node, ok := o.Get(msgKey(i)); ok {
			out = append(out, node.Objects()...)
		}
	}
	return out
}

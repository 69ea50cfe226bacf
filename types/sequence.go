package types

// Sequence is an ordered, variable length container of erased
// values. Length and capacity live in the slice header; elements past
// len(Items) are never visited by any reader.
type Sequence struct {
	Items []Value
}

func NewSequence(capacity int) *Sequence {
	return &Sequence{
		Items: make([]Value, 0, capacity),
	}
}

func (self *Sequence) Append(values ...Value) *Sequence {
	self.Items = append(self.Items, values...)
	return self
}

func (self *Sequence) Len() int {
	if self == nil {
		return 0
	}
	return len(self.Items)
}

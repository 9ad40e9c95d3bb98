// Package nbt implements the untyped Named Binary Tag tree: the tag value
// union, homogeneous lists, and map-backed compounds.
package nbt

import "fmt"

// Type identifies a tag variant. The numbering is fixed by the binary format.
type Type uint8

const (
	TypeEnd Type = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeByteArray
	TypeString
	TypeList
	TypeCompound
	TypeIntArray
	TypeLongArray
)

func (t Type) String() string {
	switch t {
	case TypeEnd:
		return "end"
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeByteArray:
		return "byte_array"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeCompound:
		return "compound"
	case TypeIntArray:
		return "int_array"
	case TypeLongArray:
		return "long_array"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the known tag types.
func (t Type) Valid() bool {
	return t <= TypeLongArray
}

// Tag is a value in the tree.
type Tag interface {
	Type() Type
}

type (
	End       struct{}
	Byte      uint8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64
)

func (End) Type() Type       { return TypeEnd }
func (Byte) Type() Type      { return TypeByte }
func (Short) Type() Type     { return TypeShort }
func (Int) Type() Type       { return TypeInt }
func (Long) Type() Type      { return TypeLong }
func (Float) Type() Type     { return TypeFloat }
func (Double) Type() Type    { return TypeDouble }
func (ByteArray) Type() Type { return TypeByteArray }
func (String) Type() Type    { return TypeString }
func (IntArray) Type() Type  { return TypeIntArray }
func (LongArray) Type() Type { return TypeLongArray }

// Zero returns the zero value tag for t, or nil for List, Compound and unknown types.
func Zero(t Type) Tag {
	switch t {
	case TypeEnd:
		return End{}
	case TypeByte:
		return Byte(0)
	case TypeShort:
		return Short(0)
	case TypeInt:
		return Int(0)
	case TypeLong:
		return Long(0)
	case TypeFloat:
		return Float(0)
	case TypeDouble:
		return Double(0)
	case TypeByteArray:
		return ByteArray{}
	case TypeString:
		return String("")
	case TypeIntArray:
		return IntArray{}
	case TypeLongArray:
		return LongArray{}
	default:
		return nil
	}
}

// TypeOf returns the type of t, or TypeEnd if t is nil.
func TypeOf(t Tag) Type {
	if t == nil {
		return TypeEnd
	}
	return t.Type()
}

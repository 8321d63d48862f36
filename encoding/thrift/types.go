package thrift

// TType is a logical Thrift type, independent of wire representation.
type TType uint8

const (
	STOP   TType = 0
	VOID   TType = 1
	BOOL   TType = 2
	BYTE   TType = 3
	I08          = BYTE // byte and i08 are the same wire type in Apache Thrift.
	DOUBLE TType = 4
	I16    TType = 6
	I32    TType = 8
	I64    TType = 10
	STRING TType = 11
	STRUCT TType = 12
	MAP    TType = 13
	SET    TType = 14
	LIST   TType = 15
)

func (t TType) String() string {
	switch t {
	case STOP:
		return "STOP"
	case VOID:
		return "VOID"
	case BOOL:
		return "BOOL"
	case BYTE:
		return "BYTE"
	case DOUBLE:
		return "DOUBLE"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case STRING:
		return "STRING"
	case STRUCT:
		return "STRUCT"
	case MAP:
		return "MAP"
	case SET:
		return "SET"
	case LIST:
		return "LIST"
	default:
		return "TType(?)"
	}
}

// CType is the 4-bit compact-protocol wire type code.
type CType uint8

const (
	cStop   CType = 0
	cTrue   CType = 1
	cFalse  CType = 2
	cByte   CType = 3
	cI16    CType = 4
	cI32    CType = 5
	cI64    CType = 6
	cDouble CType = 7
	cBinary CType = 8
	cList   CType = 9
	cSet    CType = 10
	cMap    CType = 11
	cStruct CType = 12
)

// ctypeOf maps a logical type to its compact wire representation for
// writing. It must not be called with STOP or VOID. isBoolField
// distinguishes a struct field carrying a boolean (packed into the field
// header as TRUE/FALSE) from a boolean list element (encoded as a body
// byte, same CTYPE path as any other element type would use).
func ctypeOf(t TType, boolValue bool, isBoolField bool) (CType, error) {
	switch t {
	case BOOL:
		if isBoolField {
			if boolValue {
				return cTrue, nil
			}
			return cFalse, nil
		}
		return cTrue, nil // list/set element marker; actual value is a body byte.
	case BYTE:
		return cByte, nil
	case I16:
		return cI16, nil
	case I32:
		return cI32, nil
	case I64:
		return cI64, nil
	case DOUBLE:
		return cDouble, nil
	case STRING:
		return cBinary, nil
	case STRUCT:
		return cStruct, nil
	case LIST:
		return cList, nil
	case SET:
		return cSet, nil
	case MAP:
		return cMap, nil
	default:
		return 0, newError("ctypeOf", InvalidCType, nil)
	}
}

// ttypeOf maps a wire CTYPE to its logical type for reading.
func ttypeOf(c CType) (TType, error) {
	switch c {
	case cStop:
		return STOP, nil
	case cTrue, cFalse:
		return BOOL, nil
	case cByte:
		return BYTE, nil
	case cI16:
		return I16, nil
	case cI32:
		return I32, nil
	case cI64:
		return I64, nil
	case cDouble:
		return DOUBLE, nil
	case cBinary:
		return STRING, nil
	case cStruct:
		return STRUCT, nil
	case cList:
		return LIST, nil
	case cSet:
		return SET, nil
	case cMap:
		return MAP, nil
	default:
		return 0, newError("ttypeOf", InvalidCType, nil)
	}
}

// compatible reports whether a value of wire type "got" can populate a
// field declared as logical type "want". Per spec, the default policy is
// strict equality; BYTE and I08 are the same constant so they trivially
// satisfy this without a special case.
func compatible(want, got TType) bool {
	return want == got
}

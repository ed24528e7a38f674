package symbol

import "slices"

// Predefined symbols. Their values are their positions in predefined and are
// stable for every Interner built by NewInterner.
const (
	Empty Symbol = iota

	// Keywords.
	KwAbstract
	KwAny
	KwAs
	KwAsserts
	KwAsync
	KwAwait
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwConstructor
	KwContinue
	KwDebugger
	KwDeclare
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwEnum
	KwExport
	KwExtends
	KwFalse
	KwFinally
	KwFor
	KwFrom
	KwFunction
	KwGet
	KwGlobal
	KwIf
	KwImplements
	KwImport
	KwInfer
	KwIn
	KwInstanceOf
	KwInterface
	KwIntrinsic
	KwIs
	KwKeyOf
	KwLet
	KwModule
	KwNamespace
	KwNever
	KwNew
	KwNull
	KwOf
	KwPackage
	KwPrivate
	KwProtected
	KwPublic
	KwReadonly
	KwRequire
	KwReturn
	KwStatic
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwType
	KwTypeOf
	KwUndefined
	KwUnique
	KwUnknown
	KwVar
	KwVoid
	KwWhile
	KwWith
	KwYield

	// Common non-keyword names.
	SymBigInt
	SymBoolean
	SymNumber
	SymObject
	SymString

	// digit0 is the first of the ten single digit symbols; see Digit.
	digit0
)

const (
	firstKeyword = KwAbstract
	lastKeyword  = KwYield
)

// predefined lists the strings of the predefined symbols in value order.
var predefined = [...]string{
	Empty: "",

	KwAbstract:    "abstract",
	KwAny:         "any",
	KwAs:          "as",
	KwAsserts:     "asserts",
	KwAsync:       "async",
	KwAwait:       "await",
	KwBreak:       "break",
	KwCase:        "case",
	KwCatch:       "catch",
	KwClass:       "class",
	KwConst:       "const",
	KwConstructor: "constructor",
	KwContinue:    "continue",
	KwDebugger:    "debugger",
	KwDeclare:     "declare",
	KwDefault:     "default",
	KwDelete:      "delete",
	KwDo:          "do",
	KwElse:        "else",
	KwEnum:        "enum",
	KwExport:      "export",
	KwExtends:     "extends",
	KwFalse:       "false",
	KwFinally:     "finally",
	KwFor:         "for",
	KwFrom:        "from",
	KwFunction:    "function",
	KwGet:         "get",
	KwGlobal:      "global",
	KwIf:          "if",
	KwImplements:  "implements",
	KwImport:      "import",
	KwInfer:       "infer",
	KwIn:          "in",
	KwInstanceOf:  "instanceof",
	KwInterface:   "interface",
	KwIntrinsic:   "intrinsic",
	KwIs:          "is",
	KwKeyOf:       "keyof",
	KwLet:         "let",
	KwModule:      "module",
	KwNamespace:   "namespace",
	KwNever:       "never",
	KwNew:         "new",
	KwNull:        "null",
	KwOf:          "of",
	KwPackage:     "package",
	KwPrivate:     "private",
	KwProtected:   "protected",
	KwPublic:      "public",
	KwReadonly:    "readonly",
	KwRequire:     "require",
	KwReturn:      "return",
	KwStatic:      "static",
	KwSuper:       "super",
	KwSwitch:      "switch",
	KwThis:        "this",
	KwThrow:       "throw",
	KwTrue:        "true",
	KwTry:         "try",
	KwType:        "type",
	KwTypeOf:      "typeof",
	KwUndefined:   "undefined",
	KwUnique:      "unique",
	KwUnknown:     "unknown",
	KwVar:         "var",
	KwVoid:        "void",
	KwWhile:       "while",
	KwWith:        "with",
	KwYield:       "yield",

	SymBigInt:  "BigInt",
	SymBoolean: "Boolean",
	SymNumber:  "Number",
	SymObject:  "Object",
	SymString:  "String",

	digit0 + 0: "0", digit0 + 1: "1", digit0 + 2: "2", digit0 + 3: "3", digit0 + 4: "4",
	digit0 + 5: "5", digit0 + 6: "6", digit0 + 7: "7", digit0 + 8: "8", digit0 + 9: "9",
}

// Predefined returns the predefined strings in symbol order.
func Predefined() []string {
	return slices.Clone(predefined[:])
}

// Digit returns the symbol for the decimal digit n, which must be in 0..9.
func Digit(n int) Symbol {
	if n < 0 || n > 9 {
		panic("symbol: digit out of range")
	}
	return digit0 + Symbol(n)
}

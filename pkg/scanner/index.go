package scanner

// FileIndex is a lightweight declaration index built in the same pass as
// fragment extraction. It gives matchers just enough cross-fragment context
// (is a type incomplete? does a class template have an explicit
// constructor?) without semantic analysis.
//
// The index is immutable after Scan returns.
type FileIndex struct {
	forwardDeclared map[string]bool // struct X; / class X; / union X;
	defined         map[string]bool // struct X { ... }
	explicitCtor    map[string]bool // records with an explicit constructor
	templateRecord  map[string]bool // records introduced by template<...>
}

func newFileIndex() *FileIndex {
	return &FileIndex{
		forwardDeclared: make(map[string]bool),
		defined:         make(map[string]bool),
		explicitCtor:    make(map[string]bool),
		templateRecord:  make(map[string]bool),
	}
}

// Incomplete reports whether name is forward-declared in this file and
// never defined. Unknown names return false; callers that need to
// distinguish "unknown" from "complete" should check Known first.
func (ix *FileIndex) Incomplete(name string) bool {
	return ix.forwardDeclared[name] && !ix.defined[name]
}

// Known reports whether the file declares name at all.
func (ix *FileIndex) Known(name string) bool {
	return ix.forwardDeclared[name] || ix.defined[name]
}

// HasExplicitCtorTemplate reports whether name is a class template with at
// least one explicit constructor.
func (ix *FileIndex) HasExplicitCtorTemplate(name string) bool {
	return ix.templateRecord[name] && ix.explicitCtor[name]
}

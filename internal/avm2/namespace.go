package avm2

// NamespaceKind distinguishes the AVM2 namespace-kind byte.
type NamespaceKind uint8

const (
	NamespaceKindNamespace          NamespaceKind = 0x08
	NamespaceKindPackageNamespace   NamespaceKind = 0x16
	NamespaceKindPackageInternalNs  NamespaceKind = 0x17
	NamespaceKindProtectedNamespace NamespaceKind = 0x18
	NamespaceKindExplicitNamespace  NamespaceKind = 0x19
	NamespaceKindStaticProtectedNs  NamespaceKind = 0x1a
	NamespaceKindPrivateNs          NamespaceKind = 0x05
)

// Namespace is a constant-pool namespace entry: a kind byte plus an
// index into the string pool naming it (0 means the empty/"any" name).
type Namespace struct {
	Kind NamespaceKind
	Name string
}

// NamespaceSet is a constant-pool namespace-set entry: an ordered list of
// namespace-pool indices, resolved here directly to Namespace values.
type NamespaceSet struct {
	Namespaces []Namespace
}

// Package hostsem defines the optional host-semantic plug-in interface
// (spec §6.4): name-class predicates a grammar's predicated terminals can
// consult, lookup by scope, and type construction. This core ships only
// the default implementation, which answers true for is_undeclared_name
// and constructs no types; a replacement (e.g. a Clang bridge) supplies
// real answers by implementing the same interface.
package hostsem

import (
	"github.com/walres/wrparsecxx/token"
)

// Scope is an opaque handle a host implementation hands back from lookup
// so later predicate calls can be scope-qualified. The default
// implementation never allocates one.
type Scope interface{}

// Type is an opaque handle to a host-constructed type (array/function/
// pointer/reference/member-pointer). The default implementation never
// constructs one.
type Type interface{}

// HostSemantics is the narrow interface a host C/C++ semantic analyzer
// implements to replace this core's name-class defaults and supply real
// type construction, per spec §6.4.
type HostSemantics interface {
	IsTypedefName (scope Scope, name string) bool
	IsClassName (scope Scope, name string) bool
	IsEnumName (scope Scope, name string) bool
	IsNamespaceName (scope Scope, name string) bool
	IsNamespaceAliasName (scope Scope, name string) bool
	IsTemplateName (scope Scope, name string) bool
	IsUndeclaredName (scope Scope, name string) bool

	LookupScope (enclosing Scope, name *token.Token) (Scope, bool)

	MakeArrayType (elem Type, size int64) Type
	MakeFunctionType (ret Type, params []Type, variadic bool) Type
	MakePointerType (pointee Type) Type
	MakeReferenceType (referenced Type, rvalue bool) Type
	MakeMemberPointerType (class, member Type) Type
}

// Default is HostSemantics' no-op implementation: every name class is
// "undeclared" except IsUndeclaredName itself, lookup always fails, and
// every type constructor returns nil. The parser uses this when no host
// plug-in is configured.
type Default struct{}

var _ HostSemantics = Default{}

func (Default) IsTypedefName (Scope, string) bool        { return false }
func (Default) IsClassName (Scope, string) bool          { return false }
func (Default) IsEnumName (Scope, string) bool           { return false }
func (Default) IsNamespaceName (Scope, string) bool       { return false }
func (Default) IsNamespaceAliasName (Scope, string) bool  { return false }
func (Default) IsTemplateName (Scope, string) bool        { return false }
func (Default) IsUndeclaredName (Scope, string) bool      { return true }

func (Default) LookupScope (Scope, *token.Token) (Scope, bool) { return nil, false }

func (Default) MakeArrayType (Type, int64) Type                  { return nil }
func (Default) MakeFunctionType (Type, []Type, bool) Type        { return nil }
func (Default) MakePointerType (Type) Type                       { return nil }
func (Default) MakeReferenceType (Type, bool) Type                { return nil }
func (Default) MakeMemberPointerType (Type, Type) Type           { return nil }

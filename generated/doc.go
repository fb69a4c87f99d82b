// Package generated holds reference compiler output: the message types the
// runtime's end-to-end tests exercise, written exactly the way the schema
// compiler emits them. Each type is a plain struct with public fields plus
// ByteSize/Encode/Decode/Print, all built from the kernels in the root
// package. Emitted code depends on the runtime alone.
//
// The schema behind these types, in compiler syntax:
//
//	struct Builtin        { u32 x; u32 y; };
//	struct BuiltinFixed   { u32 x[2]; };
//	struct BuiltinDynamic { u32 x<>; };
//	struct BuiltinLimited { u32 x<2>; };
//	struct BuiltinGreedy  { u32 x<...>; };
//	struct Fixcomp        { Builtin x; Builtin y; };
//	... fixed, dynamic, limited and greedy arrays of Builtin, and one
//	nested, a dynamic array and a greedy array of BuiltinDynamic.
package generated

// Package typegen renders TypeScript declarations for the keys of a parsed
// env mapping. Three output formats are supported:
//
//   - interface: augments NodeJS.ProcessEnv via declaration merging
//   - type:      a standalone `export type Env = { ... }`
//   - const:     a readonly key array plus a derived EnvKey union
//
// Templates are embedded; rendering is pure string templating with no file
// access. Keys appear in the mapping's insertion order so output is
// deterministic for a given input file.
package typegen

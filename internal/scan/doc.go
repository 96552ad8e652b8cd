// Package scan walks a source tree and extracts environment variable
// usages.
//
// Recognized idioms:
//
//	process.env.KEY
//	process.env["KEY"] / process.env['KEY']
//	import.meta.env.KEY
//	os.Getenv("KEY")
//
// The walk honors an extension allow-list and a directory exclude list
// (node_modules and friends by default). Every file is extracted
// independently with no shared mutable state, so results depend only on the
// tree contents.
package scan
